package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPublicRoutes(app, handler)
	registerUserRoutes(app, handler)
	registerDojoRoutes(app, handler)
}

func registerPublicRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
}

func registerUserRoutes(app *fiber.App, handler *Handler) {
	users := app.Group("/users")
	users.Get("/new", handler.ShowRegisterPage)
	users.Post("", handler.Register)

	users.Get("/:id/edit", handler.AuthRequired, handler.ShowEditUserPage)
	users.Post("/:id", handler.AuthRequired, handler.UpdateUser)
	users.Put("/:id", handler.AuthRequired, handler.UpdateUser)
	users.Get("/:id/password/edit", handler.AuthRequired, handler.ShowChangePasswordPage)
	users.Post("/:id/password", handler.AuthRequired, handler.ChangePassword)
}

func registerDojoRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.ListUpcomingDojos)

	dojos := app.Group("/dojos")
	dojos.Get("", handler.ListUpcomingDojos)
	dojos.Get("/happened", handler.ListHappenedDojos)
	dojos.Get("/new", handler.AuthRequired, handler.ShowNewDojoPage)
	dojos.Post("", handler.AuthRequired, handler.CreateDojo)
	dojos.Get("/:id", handler.ShowDojo)
	dojos.Get("/:id/edit", handler.AuthRequired, handler.ShowEditDojoPage)
	dojos.Post("/:id", handler.AuthRequired, handler.UpdateDojo)
	dojos.Put("/:id", handler.AuthRequired, handler.UpdateDojo)
	dojos.Post("/:id/delete", handler.AuthRequired, handler.DeleteDojo)
	dojos.Delete("/:id", handler.AuthRequired, handler.DeleteDojo)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
