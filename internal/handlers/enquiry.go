package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/example/numetry/internal/services"
)

const msgEnquiryOK = "Enquiry form submitted successfully! A confirmation SMS has been sent."

// EnquiryHandler serves the enquiry form.
type EnquiryHandler struct {
	*Web
	enquiries *services.EnquiryService
}

// NewEnquiryHandler constructs an EnquiryHandler.
func NewEnquiryHandler(web *Web, enquiries *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{Web: web, enquiries: enquiries}
}

// ShowEnquiry renders the enquiry form.
func (h *EnquiryHandler) ShowEnquiry(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderEnquiry(c, sess, fiber.StatusOK, enquiryForm{}, nil)
}

// SubmitEnquiry stores the enquiry and reports how the confirmation SMS went.
func (h *EnquiryHandler) SubmitEnquiry(c *fiber.Ctx) error {
	var form enquiryForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderEnquiry(c, sess, fiber.StatusUnprocessableEntity, form, formErrors(err))
	}

	res, err := h.enquiries.Submit(c.UserContext(), services.EnquiryInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Contact:   form.Contact,
		Email:     form.Email,
	})
	if err != nil {
		return err
	}

	if !res.SMSSent {
		return h.redirect(c, sess, "/dashboard", flashWarning, res.SMSMessage)
	}
	return h.redirect(c, sess, "/dashboard", flashSuccess, msgEnquiryOK)
}

func (h *EnquiryHandler) renderEnquiry(c *fiber.Ctx, sess *session.Session, status int, form enquiryForm, errs map[string]string) error {
	return h.render(c, sess, status, "enquiry", fiber.Map{
		"Title":  "Enquiry",
		"Form":   form,
		"Errors": errs,
	})
}
