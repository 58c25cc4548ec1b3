package helper

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// msgInternal replaces raw driver errors in 500 responses; the raw error is logged.
const msgInternal = "internal server error"

// MapPGError maps a Postgres SQLSTATE to an HTTP status.
func MapPGError(err error) (int, string) {
	// 23505 unique_violation, 23503 foreign_key_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return http.StatusConflict, "duplicate data (unique violation)"
		case "23503":
			return http.StatusBadRequest, "referenced row not found (FK violation)"
		case "23514":
			return http.StatusBadRequest, "value rejected by check constraint"
		}
	}
	log.Printf("[PGError] %v", err)
	return http.StatusInternalServerError, msgInternal
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
