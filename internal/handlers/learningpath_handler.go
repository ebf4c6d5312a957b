package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillpath/internal/models"
	"skillpath/internal/repositories"
	"skillpath/internal/services"
)

type LearningPathHandler struct {
	repo repositories.LearningPathRepository
	now  func() time.Time
}

func NewLearningPathHandler(repo repositories.LearningPathRepository) *LearningPathHandler {
	return &LearningPathHandler{repo: repo, now: time.Now}
}

// Handle dispatches POST /learning-paths. A body carrying a
// SkillAssessmentId without an operation is a generation request: the
// catalog courses for the assessed skill gap become stored learning paths.
func (h *LearningPathHandler) Handle(c *fiber.Ctx) error {
	var req models.LearningPathRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Operation == "" && req.SkillAssessmentID != "" {
		return h.generateFromAssessment(c, req)
	}

	switch req.Operation {
	case "list":
		return h.HandleList(c)
	case "read":
		return h.read(c, req)
	case "create":
		return h.create(c, req)
	case "update":
		return h.update(c, req)
	case "delete":
		return h.delete(c, req)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing operation",
		})
	}
}

// HandleList serves GET /learning-paths and the list operation.
func (h *LearningPathHandler) HandleList(c *fiber.Ctx) error {
	paths, err := h.repo.Scan()
	if err != nil {
		return err
	}

	items := make([]models.LearningPath, 0, len(paths))
	items = append(items, paths...)

	return c.JSON(fiber.Map{"Learning-Paths": items})
}

func (h *LearningPathHandler) generateFromAssessment(c *fiber.Ctx, req models.LearningPathRequest) error {
	if req.Skill == "" || req.Current == "" || req.Target == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: Skill, Current, Target",
		})
	}

	normalized := services.Normalize(req.Skill)
	courses := services.CatalogLookup(normalized, strings.ToLower(req.Current), strings.ToLower(req.Target))

	created := make([]models.LearningPath, 0, len(courses))
	for _, course := range courses {
		start, end := services.CourseDates(course.Duration, h.now())
		path := models.LearningPath{
			ID:        uuid.New().String(),
			Employee:  req.Employee,
			Skill:     req.Skill,
			Level:     req.Target,
			Name:      course.Name,
			Source:    course.Source,
			Duration:  course.Duration,
			URL:       course.URL,
			Completed: false,
			StartDate: start,
			EndDate:   end,
		}
		if err := h.repo.Put(&path); err != nil {
			return err
		}
		created = append(created, path)
	}

	return c.JSON(fiber.Map{"Learning-Paths": created})
}

func (h *LearningPathHandler) read(c *fiber.Ctx, req models.LearningPathRequest) error {
	if req.LearningPathID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing LearningPathId",
		})
	}

	path, err := h.repo.Get(req.LearningPathID)
	if err != nil {
		return err
	}
	if path == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(path)
}

func (h *LearningPathHandler) create(c *fiber.Ctx, req models.LearningPathRequest) error {
	if req.Employee == "" || req.Skill == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: Employee, Skill, Name",
		})
	}

	id := req.LearningPathID
	if id == "" {
		id = uuid.New().String()
	}

	if err := h.repo.Put(h.pathFromRequest(id, req)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Created", "LearningPathId": id})
}

func (h *LearningPathHandler) update(c *fiber.Ctx, req models.LearningPathRequest) error {
	if req.LearningPathID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing LearningPathId",
		})
	}

	if err := h.repo.Put(h.pathFromRequest(req.LearningPathID, req)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Updated"})
}

func (h *LearningPathHandler) delete(c *fiber.Ctx, req models.LearningPathRequest) error {
	if req.LearningPathID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing LearningPathId",
		})
	}

	if err := h.repo.Delete(req.LearningPathID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *LearningPathHandler) pathFromRequest(id string, req models.LearningPathRequest) *models.LearningPath {
	return &models.LearningPath{
		ID:        id,
		Employee:  req.Employee,
		Skill:     req.Skill,
		Level:     req.Level,
		Name:      req.Name,
		Source:    req.Source,
		Duration:  req.Duration,
		URL:       req.URL,
		Completed: req.Completed,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
}
