// file: internals/helpers/pagination.go
package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"perpusku_backend/internals/constants"
)

type Paging struct {
	Limit  int
	Offset int
}

// ResolveLimitOffset membaca ?limit= & ?offset= dengan default limit=10 offset=0.
// limit >= 100 ditolak (bukan di-clamp) — kontrak lama API.
func ResolveLimitOffset(c *fiber.Ctx) (Paging, error) {
	limitStr := strings.TrimSpace(c.Query("limit", strconv.Itoa(constants.DefaultListLimit)))
	offsetStr := strings.TrimSpace(c.Query("offset", "0"))

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return Paging{}, fmt.Errorf("limit tidak valid: %q", limitStr)
	}
	if limit >= constants.MaxListLimit {
		return Paging{}, fmt.Errorf("limit harus kurang dari %d", constants.MaxListLimit)
	}
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}

	return Paging{Limit: limit, Offset: offset}, nil
}
