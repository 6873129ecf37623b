package stub

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kaiiquetome/GraphixWeb/internal/application/dto"
	"github.com/kaiiquetome/GraphixWeb/internal/domain/entity"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
	"github.com/kaiiquetome/GraphixWeb/pkg/token"
)

// AuthHandler emissão e renovação de tokens.
type AuthHandler struct {
	data       *Dataset
	secret     string
	issuer     string
	expMinutes int
	log        *logger.Logger
}

// NewAuthHandler constrói o handler de autenticação.
func NewAuthHandler(data *Dataset, secret, issuer string, expMinutes int, log *logger.Logger) *AuthHandler {
	return &AuthHandler{data: data, secret: secret, issuer: issuer, expMinutes: expMinutes, log: log}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo da requisição inválido")
	}
	if in.UserName == "" || in.Password == "" {
		return badRequest(c, "userName e password são requeridos")
	}

	user, ok := h.data.checkPassword(in.UserName, in.Password)
	if !ok {
		h.log.Warn().Str("user", in.UserName).Msg("login recusado")
		return unauthorized(c, "usuário ou senha inválidos")
	}

	return c.JSON(h.issue(user))
}

// Refresh POST /auth/refresh-token. Cada refresh token vale uma única renovação.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "corpo da requisição inválido")
	}

	userID, ok := h.data.consumeRefresh(in.RefreshToken)
	if !ok {
		return unauthorized(c, "refresh token inválido ou já utilizado")
	}
	user, ok := h.data.userByID(userID)
	if !ok {
		return unauthorized(c, "usuário não encontrado")
	}

	h.log.Debug().Int("user_id", user.ID).Msg("sessão renovada")
	return c.JSON(h.issue(user))
}

// issue monta o par de tokens e os dados do usuário autenticado.
func (h *AuthHandler) issue(user entity.User) dto.AuthResponse {
	roles := []string{user.Profile.Role()}
	jwt, err := token.Generate(h.secret, h.issuer, token.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Login:  user.Login,
		Roles:  roles,
	}, h.expMinutes)
	if err != nil {
		// só acontece com segredo vazio; o stub valida a configuração no boot
		h.log.Error().Err(err).Msg("falha ao assinar token")
	}
	return dto.AuthResponse{
		JwtToken:     jwt,
		RefreshToken: h.data.issueRefresh(user.ID),
		Roles:        roles,
		User: dto.UserInfo{
			ID:      user.ID,
			Name:    user.Name,
			Login:   user.Login,
			Profile: user.Profile.String(),
		},
	}
}

// ── Middleware ────────────────────────────────────────────────────────────────

// AuthRequired exige Bearer token válido nas rotas protegidas.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return unauthorized(c, "token de acesso ausente")
		}
		claims, err := token.Parse(secret, raw)
		if err != nil {
			return unauthorized(c, "token de acesso inválido ou expirado")
		}
		c.Locals("userID", claims.UserID)
		c.Locals("roles", claims.Roles)
		return c.Next()
	}
}

// ── Corpos de erro ────────────────────────────────────────────────────────────

// ErrorHandler converte os erros que escapam dos handlers (rota inexistente,
// falha interna) para o corpo {error, detail} do backend, preservando o
// status do *fiber.Error quando houver um.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		message := "erro interno"
		if code != fiber.StatusInternalServerError {
			message = http.StatusText(code)
		}
		return c.Status(code).JSON(dto.ErrorBody{Error: message, Detail: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorBody{Error: "requisição inválida", Detail: detail})
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorBody{Error: "não autorizado", Detail: detail})
}

func notFound(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorBody{Error: "não encontrado", Detail: detail})
}
