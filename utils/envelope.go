package utils

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope:
//
//	{"success": true,  "data": ...}
//	{"success": false, "error": {"message": "...", "code": "..."}}
//
// Error codes surfaced to clients
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeConflict     = "CONFLICT"
	CodeServerError  = "SERVER_ERROR"
)

type envelopeError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Success writes a {success:true, data} envelope.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Created writes a {success:true, data} envelope with a 201 status.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// Fail writes a {success:false, error:{message, code}} envelope.
func Fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   envelopeError{Message: message, Code: code},
	})
}
