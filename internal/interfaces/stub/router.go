package stub

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
)

// Deps dependências do roteador do stub.
type Deps struct {
	Data            *Dataset
	JWTSecret       string
	Issuer          string
	TokenExpMinutes int
	Log             *logger.Logger
}

// Router registra todas as rotas do backend de desenvolvimento sob /api/v1.
func Router(app *fiber.App, deps Deps) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	api := app.Group("/api/v1")

	auth := NewAuthHandler(deps.Data, deps.JWTSecret, deps.Issuer, deps.TokenExpMinutes, deps.Log)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/refresh-token", auth.Refresh)

	protected := api.Group("", AuthRequired(deps.JWTSecret))

	registerResource(protected.Group("/customer"), deps.Data.Customers, resourceOptions[entity.Customer]{
		match:     customerMatch,
		updateAck: true,
	})
	registerResource(protected.Group("/product"), deps.Data.Products, resourceOptions[entity.Product]{
		match:     productMatch,
		updateAck: true,
	})
	registerResource(protected.Group("/account"), deps.Data.Accounts, resourceOptions[entity.Account]{
		updateAck: true,
	})
	registerResource(protected.Group("/user"), deps.Data.Users, resourceOptions[entity.User]{
		updateAck: true,
		beforeSave: func(u *entity.User) {
			u.Password = "" // a senha nunca transita de volta
		},
	})
	registerResource(protected.Group("/cashFlow"), deps.Data.CashFlows, resourceOptions[entity.CashFlow]{})

	orders := protected.Group("/order")
	oh := NewOrderHandler(deps.Data, deps.Log)
	// rotas fixas antes de /:id para não serem capturadas pelo parâmetro
	orders.Get("/export", oh.Export)
	registerResource(orders, deps.Data.Orders, resourceOptions[entity.Order]{
		match:      oh.match,
		beforeSave: oh.beforeSave,
	})
	orders.Get("/:id/download", oh.DownloadQuote)
	orders.Get("/:id/ordem-servico", oh.DownloadProductionOrder)

	registerResource(protected.Group("/OrderService"), deps.Data.ServiceOrders, resourceOptions[entity.OS]{
		match: serviceOrderMatch,
	})
}

// ── Filtros por recurso ───────────────────────────────────────────────────────

func customerMatch(c *fiber.Ctx) func(entity.Customer) bool {
	search := c.Query("Search")
	if search == "" {
		return nil
	}
	return func(cu entity.Customer) bool {
		return foldContains(cu.CorporateName, search) ||
			foldContains(cu.Cnpj, search) ||
			foldContains(cu.Contact, search)
	}
}

func productMatch(c *fiber.Ctx) func(entity.Product) bool {
	search := c.Query("Search")
	if search == "" {
		return nil
	}
	return func(p entity.Product) bool {
		return foldContains(p.Description, search) ||
			foldContains(p.Material, search) ||
			foldContains(p.Color, search)
	}
}

func serviceOrderMatch(c *fiber.Ctx) func(entity.OS) bool {
	status := c.Query("Status")
	if status == "" {
		return nil
	}
	want := entity.OSStatus(c.QueryInt("Status", -1))
	return func(os entity.OS) bool { return os.Status == want }
}
