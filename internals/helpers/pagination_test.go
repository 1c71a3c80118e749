package helper_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "perpusku_backend/internals/helpers"
)

// resolve menjalankan ResolveLimitOffset lewat handler fiber beneran.
func resolve(t *testing.T, target string) (helper.Paging, error, int) {
	t.Helper()

	var got helper.Paging
	var resolveErr error

	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		got, resolveErr = helper.ResolveLimitOffset(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	return got, resolveErr, resp.StatusCode
}

func Test_ResolveLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{
			name:       "defaults",
			target:     "/list",
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "explicit_values",
			target:     "/list?limit=25&offset=50",
			wantLimit:  25,
			wantOffset: 50,
		},
		{
			name:      "limit_99_is_last_valid_value",
			target:    "/list?limit=99",
			wantLimit: 99,
		},
		{
			name:    "limit_100_rejected",
			target:  "/list?limit=100",
			wantErr: true,
		},
		{
			name:    "limit_not_a_number_rejected",
			target:  "/list?limit=banyak",
			wantErr: true,
		},
		{
			name:       "nonpositive_limit_falls_back_to_default",
			target:     "/list?limit=0",
			wantLimit:  10,
			wantOffset: 0,
		},
		{
			name:       "negative_offset_clamped_to_zero",
			target:     "/list?offset=-3",
			wantLimit:  10,
			wantOffset: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paging, resolveErr, status := resolve(t, tc.target)
			assert.Equal(t, fiber.StatusOK, status)
			if tc.wantErr {
				assert.Error(t, resolveErr)
				return
			}
			require.NoError(t, resolveErr)
			assert.Equal(t, tc.wantLimit, paging.Limit)
			assert.Equal(t, tc.wantOffset, paging.Offset)
		})
	}
}

func Test_BuildPaginationFromOffset(t *testing.T) {
	p := helper.BuildPaginationFromOffset(42, 10, 10, 10)

	// total = jumlah baris yang match, bukan ukuran halaman
	assert.Equal(t, int64(42), p.Total)
	assert.Equal(t, 10, p.Count)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := helper.BuildPaginationFromOffset(42, 40, 10, 2)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	first := helper.BuildPaginationFromOffset(5, 0, 10, 5)
	assert.False(t, first.HasNext)
	assert.False(t, first.HasPrev)
}
