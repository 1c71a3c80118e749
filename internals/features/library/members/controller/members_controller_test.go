package controller_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memberController "perpusku_backend/internals/features/library/members/controller"
)

func Test_MembersController_LookupNeedsExactlyOneSelector(t *testing.T) {
	ctl := memberController.NewMembersController(nil) // selector dicek sebelum store disentuh

	app := fiber.New()
	app.Get("/members/detail", ctl.GetBySelector)

	id := "0b0e8a1e-95a9-4ec5-9b3e-5a1f6c2d4e7f"
	for _, tc := range []struct {
		name   string
		target string
	}{
		{name: "neither", target: "/members/detail"},
		{name: "both", target: "/members/detail?id=" + id + "&name=Budi"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func Test_MembersController_MalformedIDIs404(t *testing.T) {
	ctl := memberController.NewMembersController(nil)

	app := fiber.New()
	app.Get("/members/:id/detail", ctl.GetByID)
	app.Put("/members/:id", ctl.Update)
	app.Delete("/members/:id", ctl.Delete)

	for _, tc := range []struct {
		name   string
		method string
		target string
	}{
		{name: "detail", method: fiber.MethodGet, target: "/members/bukan-uuid/detail"},
		{name: "update", method: fiber.MethodPut, target: "/members/bukan-uuid"},
		{name: "delete", method: fiber.MethodDelete, target: "/members/bukan-uuid"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}
