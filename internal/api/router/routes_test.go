// Package router - Test phạm vi middleware của route: middleware phân quyền
// chỉ được chạy cho đúng route mà nó được gắn vào.
package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func denyHandler(message string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return c.Status(fiber.StatusForbidden).SendString(message)
	}
}

// stubCRUDHandler trả 200 cho mọi operation, dùng để test routing.
type stubCRUDHandler struct{}

func (stubCRUDHandler) InsertOne(c fiber.Ctx) error          { return okHandler(c) }
func (stubCRUDHandler) InsertMany(c fiber.Ctx) error         { return okHandler(c) }
func (stubCRUDHandler) Find(c fiber.Ctx) error               { return okHandler(c) }
func (stubCRUDHandler) FindOne(c fiber.Ctx) error            { return okHandler(c) }
func (stubCRUDHandler) FindOneById(c fiber.Ctx) error        { return okHandler(c) }
func (stubCRUDHandler) FindManyByIds(c fiber.Ctx) error      { return okHandler(c) }
func (stubCRUDHandler) FindWithPagination(c fiber.Ctx) error { return okHandler(c) }
func (stubCRUDHandler) UpdateOne(c fiber.Ctx) error          { return okHandler(c) }
func (stubCRUDHandler) UpdateMany(c fiber.Ctx) error         { return okHandler(c) }
func (stubCRUDHandler) UpdateById(c fiber.Ctx) error         { return okHandler(c) }
func (stubCRUDHandler) FindOneAndUpdate(c fiber.Ctx) error   { return okHandler(c) }
func (stubCRUDHandler) DeleteOne(c fiber.Ctx) error          { return okHandler(c) }
func (stubCRUDHandler) DeleteMany(c fiber.Ctx) error         { return okHandler(c) }
func (stubCRUDHandler) DeleteById(c fiber.Ctx) error         { return okHandler(c) }
func (stubCRUDHandler) FindOneAndDelete(c fiber.Ctx) error   { return okHandler(c) }
func (stubCRUDHandler) CountDocuments(c fiber.Ctx) error     { return okHandler(c) }
func (stubCRUDHandler) Distinct(c fiber.Ctx) error           { return okHandler(c) }
func (stubCRUDHandler) Upsert(c fiber.Ctx) error             { return okHandler(c) }
func (stubCRUDHandler) DocumentExists(c fiber.Ctx) error     { return okHandler(c) }

// Middleware gắn cho một route không được lan sang route khác cùng prefix,
// kể cả khi route đó được đăng ký sau.
func TestRegisterRouteWithMiddleware_ScopedToRoute(t *testing.T) {
	app := fiber.New()
	v1 := app.Group("/api/v1")

	RegisterRouteWithMiddleware(v1, "/jobs", "POST", "/post", []fiber.Handler{denyHandler("employer only")}, okHandler)
	RegisterRouteWithMiddleware(v1, "/jobs", "GET", "/open", nil, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/jobs/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode, "route đọc không được thừa hưởng middleware của route ghi")

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/jobs/post", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "middleware phải chạy cho đúng route của nó")
}

// Hai route cùng prefix với middleware khác nhau: mỗi route chỉ chịu chain của mình.
func TestRegisterRouteWithMiddleware_DistinctChainsSamePrefix(t *testing.T) {
	app := fiber.New()
	v1 := app.Group("/api/v1")

	RegisterRouteWithMiddleware(v1, "/applications", "POST", "/apply", []fiber.Handler{denyHandler("youth only")}, okHandler)
	RegisterRouteWithMiddleware(v1, "/applications", "PUT", "/update-status/:id", nil, okHandler)

	resp, err := app.Test(httptest.NewRequest("PUT", "/api/v1/applications/update-status/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Middleware chạy TRƯỚC handler và theo đúng thứ tự truyền vào.
func TestRegisterRouteWithMiddleware_OrderBeforeHandler(t *testing.T) {
	app := fiber.New()
	v1 := app.Group("/api/v1")

	first := func(c fiber.Ctx) error {
		c.Locals("chain", "first")
		return c.Next()
	}
	second := func(c fiber.Ctx) error {
		chain, _ := c.Locals("chain").(string)
		c.Locals("chain", chain+",second")
		return c.Next()
	}
	handler := func(c fiber.Ctx) error {
		chain, _ := c.Locals("chain").(string)
		return c.SendString(chain)
	}

	RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{first, second}, handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/auth/me", nil))
	require.NoError(t, err)
	body := make([]byte, 64)
	n, _ := resp.Body.Read(body)
	assert.Equal(t, "first,second", string(body[:n]))
}

// Route đọc và route ghi của cùng collection dùng chain riêng:
// middleware ghi (đăng ký trước) không được chặn các route đọc.
func TestRegisterCRUDRoutes_ReadWriteSeparation(t *testing.T) {
	app := fiber.New()
	v1 := app.Group("/api/v1")
	r := NewRouter(app)

	r.RegisterCRUDRoutes(v1, "/courses", stubCRUDHandler{}, ReadWriteConfig,
		nil,
		[]fiber.Handler{denyHandler("mentor only")})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/courses/find", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/courses/find-with-pagination", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/v1/courses/insert-one", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/api/v1/courses/update-by-id/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
