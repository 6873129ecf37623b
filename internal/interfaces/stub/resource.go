package stub

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
)

// resourceOptions comportamento por recurso em cima do CRUD genérico.
type resourceOptions[T any] struct {
	// match filtro adicional construído a partir da query string.
	match func(c *fiber.Ctx) func(T) bool
	// updateAck quando true o PUT devolve true em vez do registro.
	updateAck bool
	// beforeSave ajusta o registro antes de criar ou atualizar.
	beforeSave func(item *T)
}

// registerResource registra GET/POST/PUT/DELETE no padrão do backend.
func registerResource[T any, P entityPtr[T]](r fiber.Router, col *collection[T, P], opts resourceOptions[T]) {
	r.Get("/", listHandler(col, opts))
	r.Post("/", createHandler(col, opts))
	r.Get("/:id", getHandler(col))
	r.Put("/:id", updateHandler(col, opts))
	r.Put("/", updateHandler(col, opts))
	r.Delete("/:id", deleteHandler(col))
}

func listHandler[T any, P entityPtr[T]](col *collection[T, P], opts resourceOptions[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageSize := c.QueryInt("PageSize", dto.DefaultPageSize)
		if pageSize < 1 {
			pageSize = dto.DefaultPageSize
		}
		afterID := 0
		if cursor := c.Query("Cursor"); cursor != "" {
			id, err := decodeCursor(cursor)
			if err != nil {
				return badRequest(c, err.Error())
			}
			afterID = id
		}

		preds := []func(T) bool{}
		if p := dateRangeFilter[T, P](c.Query("StartDate"), c.Query("EndDate")); p != nil {
			preds = append(preds, p)
		}
		if opts.match != nil {
			if p := opts.match(c); p != nil {
				preds = append(preds, p)
			}
		}
		match := func(item T) bool {
			for _, p := range preds {
				if !p(item) {
					return false
				}
			}
			return true
		}

		items, more := col.page(afterID, pageSize, match)
		out := dto.ListResponse[T]{PageSize: pageSize, Data: items}
		if more && len(items) > 0 {
			out.Cursor = encodeCursor(P(&items[len(items)-1]).GetID())
		}
		return c.JSON(out)
	}
}

func getHandler[T any, P entityPtr[T]](col *collection[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return badRequest(c, "id inválido")
		}
		item, ok := col.get(id)
		if !ok {
			return notFound(c, "registro não encontrado")
		}
		return c.JSON(item)
	}
}

func createHandler[T any, P entityPtr[T]](col *collection[T, P], opts resourceOptions[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := c.BodyParser(&item); err != nil {
			return badRequest(c, "corpo da requisição inválido")
		}
		if opts.beforeSave != nil {
			opts.beforeSave(&item)
		}
		return c.Status(fiber.StatusCreated).JSON(col.create(item))
	}
}

func updateHandler[T any, P entityPtr[T]](col *collection[T, P], opts resourceOptions[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := c.BodyParser(&item); err != nil {
			return badRequest(c, "corpo da requisição inválido")
		}
		// o id da rota prevalece sobre o do corpo
		if raw := c.Params("id"); raw != "" {
			id, err := c.ParamsInt("id")
			if err != nil || id < 1 {
				return badRequest(c, "id inválido")
			}
			P(&item).SetID(id)
		}
		if P(&item).GetID() < 1 {
			return badRequest(c, "id é requerido")
		}
		if opts.beforeSave != nil {
			opts.beforeSave(&item)
		}
		saved, ok := col.update(item)
		if !ok {
			return notFound(c, "registro não encontrado")
		}
		if opts.updateAck {
			return c.JSON(true)
		}
		return c.JSON(saved)
	}
}

func deleteHandler[T any, P entityPtr[T]](col *collection[T, P]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return badRequest(c, "id inválido")
		}
		if !col.remove(id) {
			return notFound(c, "registro não encontrado")
		}
		return c.JSON(true)
	}
}

// dateRangeFilter filtra por data de criação no formato 2006-01-02.
func dateRangeFilter[T any, P entityPtr[T]](start, end string) func(T) bool {
	if start == "" && end == "" {
		return nil
	}
	var from, to time.Time
	if start != "" {
		from, _ = time.Parse("2006-01-02", start)
	}
	if end != "" {
		if t, err := time.Parse("2006-01-02", end); err == nil {
			to = t.Add(24 * time.Hour)
		}
	}
	return func(item T) bool {
		created := P(&item).Created()
		if created == nil {
			return false
		}
		if !from.IsZero() && created.Before(from) {
			return false
		}
		if !to.IsZero() && !created.Before(to) {
			return false
		}
		return true
	}
}
