package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"skillpath/internal/models"
	"skillpath/internal/repositories"
	"skillpath/internal/services"
)

type RecommendationHandler struct {
	repo        repositories.RecommendationRepository
	recommender services.RecommenderService
	now         func() time.Time
}

func NewRecommendationHandler(
	repo repositories.RecommendationRepository,
	recommender services.RecommenderService,
) *RecommendationHandler {
	return &RecommendationHandler{
		repo:        repo,
		recommender: recommender,
		now:         time.Now,
	}
}

// Handle dispatches POST /recommendations. A body without an operation but
// with skill and level fields is a generation request.
func (h *RecommendationHandler) Handle(c *fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	switch req.Operation {
	case "list":
		return h.HandleList(c)
	case "read":
		return h.read(c, req)
	case "delete":
		return h.delete(c, req)
	case "create":
		// Batches are only created through generation; acknowledged for
		// clients that speak the generic CRUD protocol.
		return c.JSON(fiber.Map{"message": "Created"})
	case "update":
		return c.JSON(fiber.Map{"message": "Updated"})
	case "":
		return h.generate(c, req)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing operation",
		})
	}
}

// HandleList serves the virtual learning-path view: every course of every
// batch flattened to one entry, keyed by its content-derived id, with dates
// computed from the course duration at read time.
func (h *RecommendationHandler) HandleList(c *fiber.Ctx) error {
	batches, err := h.repo.Scan()
	if err != nil {
		return err
	}

	paths := make([]models.LearningPath, 0, len(batches))
	for _, batch := range batches {
		for _, rec := range batch.Recommendations {
			duration := rec.Duration
			if duration == "" {
				duration = "4 weeks"
			}
			start, end := services.CourseDates(duration, h.now())
			paths = append(paths, models.LearningPath{
				ID:        services.LearningPathID(batch.Employee, rec.Name, rec.Source),
				Employee:  batch.Employee,
				Skill:     batch.Skill,
				Level:     batch.TargetLevel,
				Name:      rec.Name,
				Source:    rec.Source,
				Duration:  rec.Duration,
				URL:       rec.URL,
				Completed: false,
				StartDate: start,
				EndDate:   end,
			})
		}
	}

	return c.JSON(fiber.Map{"Learning-Paths": paths})
}

// HandleGet serves GET /recommendations/:id for one stored batch.
func (h *RecommendationHandler) HandleGet(c *fiber.Ctx) error {
	batch, err := h.repo.Get(c.Params("id"))
	if err != nil {
		return err
	}
	if batch == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Recommendation not found",
		})
	}

	return c.JSON(batch)
}

// HandleDelete serves DELETE /recommendations/:id by native batch id.
func (h *RecommendationHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing RecommendationId",
		})
	}

	if err := h.repo.Delete(id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Deleted"})
}

func (h *RecommendationHandler) read(c *fiber.Ctx, req models.RecommendationRequest) error {
	if req.RecommendationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing RecommendationId",
		})
	}

	batch, err := h.repo.Get(req.RecommendationID)
	if err != nil {
		return err
	}
	if batch == nil {
		return c.JSON(fiber.Map{})
	}

	return c.JSON(batch)
}

// delete removes a batch either by its native id or by the derived id of one
// of its virtual learning paths. The derived path has to recompute the exact
// id used by the list view; a drifted derivation would make deletes miss
// silently.
func (h *RecommendationHandler) delete(c *fiber.Ctx, req models.RecommendationRequest) error {
	if req.LearningPathID == "" && req.RecommendationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing LearningPathId or RecommendationId",
		})
	}

	if req.LearningPathID == "" {
		if err := h.repo.Delete(req.RecommendationID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Deleted"})
	}

	batches, err := h.repo.Scan()
	if err != nil {
		return err
	}

	for _, batch := range batches {
		for _, rec := range batch.Recommendations {
			if services.LearningPathID(batch.Employee, rec.Name, rec.Source) == req.LearningPathID {
				// The whole owning batch goes; its other courses are
				// views over the same record.
				if err := h.repo.Delete(batch.ID); err != nil {
					return err
				}
				return c.JSON(fiber.Map{"message": "Deleted"})
			}
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Learning path not found",
	})
}

func (h *RecommendationHandler) generate(c *fiber.Ctx, req models.RecommendationRequest) error {
	skill := strings.TrimSpace(req.Skill)
	currentLevel := strings.TrimSpace(firstNonEmpty(req.Current, req.CurrentLevel))
	targetLevel := strings.TrimSpace(firstNonEmpty(req.Target, req.TargetLevel))
	employee := strings.TrimSpace(req.Employee)

	if skill == "" || currentLevel == "" || targetLevel == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: Skill, Current, Target",
		})
	}

	batchID, recommendations := h.recommender.Generate(
		c.UserContext(), skill, currentLevel, targetLevel, employee, req.SkillAssessmentID)

	response := fiber.Map{
		"recommendation_id": batchID,
		"recommendations":   recommendations,
		"employee":          employee,
		"skill":             titleCase(skill),
		"current_level":     titleCase(currentLevel),
		"target_level":      titleCase(targetLevel),
		"powered_by":        "Gemini AI",
	}
	if req.SkillAssessmentID != "" {
		response["skill_assessment_id"] = req.SkillAssessmentID
	}

	return c.JSON(response)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
