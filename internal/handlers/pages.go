package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/numetry/internal/models"
)

// Courses is the catalog shown on /courses.
var Courses = []models.Course{
	{
		Title:       "Python",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "Hands-on Python from syntax basics to building real applications, taught by mentors with industry experience.",
		Image:       "python.gif",
	},
	{
		Title:       "Introduction To HTML",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "Page structure, elements and attributes, links, images, tables and semantic markup for accessible web pages.",
		Image:       "html.gif",
	},
	{
		Title:       "C++ Programming",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "Core C++ with object-oriented design, memory management, templates and the Standard Template Library.",
		Image:       "c.gif",
	},
	{
		Title:       ".NET Programming",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "C# and the .NET platform, ASP.NET web applications, debugging, deployment and Entity Framework.",
		Image:       "net.gif",
	},
	{
		Title:       "Data Science",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "Data analysis with Python: cleaning, exploring and visualising data with the standard data science toolkit.",
		Image:       "data_science.gif",
	},
	{
		Title:       "Machine Learning",
		Location:    "Pune",
		Duration:    "3 Months",
		Instructor:  "3RI Expert",
		Description: "Supervised and unsupervised learning in Python with practical sessions on real datasets.",
		Image:       "machine_learning.gif",
	},
}

// PageHandler renders the static marketing pages.
type PageHandler struct {
	*Web
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(web *Web) *PageHandler {
	return &PageHandler{Web: web}
}

func (h *PageHandler) page(view, title string, extra fiber.Map) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := h.session(c)
		if err != nil {
			return err
		}
		data := fiber.Map{"Title": title}
		for k, v := range extra {
			data[k] = v
		}
		return h.render(c, sess, fiber.StatusOK, view, data)
	}
}

func (h *PageHandler) Home() fiber.Handler     { return h.page("home", "", nil) }
func (h *PageHandler) Overview() fiber.Handler { return h.page("overview", "Overview", nil) }
func (h *PageHandler) FAQs() fiber.Handler     { return h.page("faqs", "FAQs", nil) }
func (h *PageHandler) Contact() fiber.Handler  { return h.page("contact", "Contact", nil) }

func (h *PageHandler) Courses() fiber.Handler {
	return h.page("courses", "Courses", fiber.Map{"Courses": Courses})
}
