package controller_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookController "perpusku_backend/internals/features/library/books/controller"
)

// ID malformed harus identik dengan baris yang tidak ada: 404,
// dan harus kejadian SEBELUM query apa pun menyentuh store.
func Test_BooksController_MalformedIDIs404(t *testing.T) {
	ctl := bookController.NewBooksController(nil, nil) // DB nil: lookup tidak boleh sampai ke store

	app := fiber.New()
	app.Get("/books/:id/detail", ctl.GetByID)
	app.Put("/books/:id", ctl.Update)
	app.Delete("/books/:id", ctl.Delete)

	for _, tc := range []struct {
		name   string
		method string
		target string
	}{
		{name: "detail", method: fiber.MethodGet, target: "/books/bukan-uuid/detail"},
		{name: "update", method: fiber.MethodPut, target: "/books/bukan-uuid"},
		{name: "delete", method: fiber.MethodDelete, target: "/books/bukan-uuid"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}

func Test_BooksController_SearchRejectsUnknownField(t *testing.T) {
	ctl := bookController.NewBooksController(nil, nil)

	app := fiber.New()
	app.Get("/books/search", ctl.Search)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/books/search?field=bogus&query=war", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func Test_BooksController_SearchRequiresQuery(t *testing.T) {
	ctl := bookController.NewBooksController(nil, nil)

	app := fiber.New()
	app.Get("/books/search", ctl.Search)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/books/search?field=title", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func Test_BooksController_ListRejectsLimit100(t *testing.T) {
	ctl := bookController.NewBooksController(nil, nil)

	app := fiber.New()
	app.Get("/books", ctl.List)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/books?limit=100", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func Test_BooksController_ImportRejectsBadPages(t *testing.T) {
	ctl := bookController.NewBooksController(nil, nil)

	app := fiber.New()
	app.Post("/books/import", ctl.Import)

	for _, target := range []string{
		"/books/import?pages=abc",
		"/books/import?pages=0",
		"/books/import?pages=-2",
	} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
	}
}
