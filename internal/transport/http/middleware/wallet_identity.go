package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jarrensj/monkfish/internal/api"
	"github.com/jarrensj/monkfish/internal/entities"
	"github.com/jarrensj/monkfish/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderWalletAddress carries the caller's connected wallet address.
const HeaderWalletAddress = "X-Wallet-Address"

// UserLocalsKey is the fiber locals key holding the bound *entities.User.
const UserLocalsKey = "user"

// WalletIdentity re-derives the caller's identity from the connected wallet
// on every request. There are no session tokens: a request without the
// header simply has no identity, and handlers that need one reject it.
func WalletIdentity(log *zap.SugaredLogger, uc usecase.IdentityUsecaseInterface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		addr := strings.TrimSpace(c.Get(HeaderWalletAddress))
		if addr == "" {
			return c.Next()
		}

		usr, err := uc.BindIdentity(c.Context(), addr)
		if err != nil {
			if errors.Is(err, entities.ErrInvalidArgument) {
				return c.Status(http.StatusBadRequest).JSON(api.ErrorResponse{Error: "invalid wallet address"})
			}
			log.Errorw("failed to bind wallet identity", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(api.ErrorResponse{Error: "failed to establish identity"})
		}

		c.Locals(UserLocalsKey, usr)
		return c.Next()
	}
}

// BoundUser returns the identity established by WalletIdentity, if any.
func BoundUser(c *fiber.Ctx) (*entities.User, bool) {
	usr, ok := c.Locals(UserLocalsKey).(*entities.User)
	return usr, ok && usr != nil
}
