package handlers

import (
	"embed"

	"github.com/gofiber/fiber/v2"
)

//go:embed forms/*.html
var formFiles embed.FS

func sendForm(c *fiber.Ctx, name string) error {
	page, err := formFiles.ReadFile("forms/" + name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "form not found")
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}
