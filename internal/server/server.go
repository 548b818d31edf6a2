package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	carve "github.com/bglenden/carving-designer-sub000"
	"github.com/bglenden/carving-designer-sub000/internal/config"
	"github.com/bglenden/carving-designer-sub000/internal/store"
)

// Handler serves the design document API: CRUD over stored patterns plus
// the interaction settings the editing front end bootstraps from.
type Handler struct {
	store *store.Store
	cfg   config.Config
}

func New(st *store.Store, cfg config.Config) *Handler {
	return &Handler{store: st, cfg: cfg}
}

// Register mounts every route on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)
	app.Get("/settings", h.Settings)

	app.Get("/designs", h.ListDesigns)
	app.Post("/designs", h.CreateDesign)
	app.Get("/designs/:id", h.GetDesign)
	app.Put("/designs/:id", h.UpdateDesign)
	app.Delete("/designs/:id", h.DeleteDesign)
}

func (h *Handler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

func (h *Handler) Ready(c fiber.Ctx) error {
	if err := h.store.Ping(context.Background()); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "db unreachable"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}

// Settings returns the interaction tunables.
func (h *Handler) Settings(c fiber.Ctx) error {
	return c.JSON(h.cfg.Interaction)
}

type designRequest struct {
	Name string          `json:"name"`
	Doc  json.RawMessage `json:"doc"`
}

// emptyDoc is the document a design starts from when the request has none.
var emptyDoc = json.RawMessage(`{"shapes":[]}`)

func (h *Handler) CreateDesign(c fiber.Ctx) error {
	var req designRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}
	if len(req.Doc) == 0 {
		req.Doc = emptyDoc
	}
	if err := validateDoc(req.Doc); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	d, err := h.store.Create(context.Background(), req.Name, req.Doc)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.Status(http.StatusCreated).JSON(d)
}

func (h *Handler) GetDesign(c fiber.Ctx) error {
	d, err := h.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "load failed"})
	}
	return c.JSON(d)
}

func (h *Handler) ListDesigns(c fiber.Ctx) error {
	designs, err := h.store.List(context.Background())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "list failed"})
	}
	if designs == nil {
		designs = []store.Design{}
	}
	return c.JSON(designs)
}

func (h *Handler) UpdateDesign(c fiber.Ctx) error {
	var req designRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name required"})
	}
	if len(req.Doc) == 0 {
		req.Doc = emptyDoc
	}
	if err := validateDoc(req.Doc); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	d, err := h.store.Update(context.Background(), c.Params("id"), req.Name, req.Doc)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(d)
}

func (h *Handler) DeleteDesign(c fiber.Ctx) error {
	if err := h.store.Delete(context.Background(), c.Params("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "delete failed"})
	}
	return c.SendStatus(http.StatusNoContent)
}

// validateDoc parses doc as a pattern document so malformed shapes are
// rejected at the door rather than stored.
func validateDoc(doc json.RawMessage) error {
	var p carve.Pattern
	return json.Unmarshal(doc, &p)
}
