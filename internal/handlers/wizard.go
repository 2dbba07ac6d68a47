package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"podarunok-backend/internal/i18n"
	"podarunok-backend/internal/models"
	"podarunok-backend/internal/wizard"
)

type WizardHandler struct {
	service    *wizard.Service
	translator *i18n.Translator
}

func NewWizardHandler(service *wizard.Service, translator *i18n.Translator) *WizardHandler {
	return &WizardHandler{service: service, translator: translator}
}

// Open starts a wizard session at the upload step. The body is optional; a
// product/format pair from a direct catalog pick is preselected. A body
// that is present but malformed is rejected rather than ignored.
func (h *WizardHandler) Open(c *gin.Context) {
	var req models.OpenWizardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
			return
		}
	}

	sess, err := h.service.Open(req.ProductID, req.FormatID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

// UploadPhoto attaches the selected image file to the session.
func (h *WizardHandler) UploadPhoto(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no photo uploaded", Message: err.Error()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open file", Message: err.Error()})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read file", Message: err.Error()})
		return
	}

	err = h.service.AttachPhoto(sess, wizard.Photo{
		FileName: file.Filename,
		MimeType: file.Header.Get("Content-Type"),
		Size:     file.Size,
		Data:     data,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) Continue(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.service.Continue(sess); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) SelectProduct(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SelectProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := h.service.SelectProduct(sess, req.ProductID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) SelectFormat(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SelectFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if err := h.service.SelectFormat(sess, req.FormatID); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) Preview(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	preview, err := h.service.Preview(sess)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *WizardHandler) ProceedToCheckout(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.service.ProceedToCheckout(sess); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) Back(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.service.Back(sess); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) Submit(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if _, err := h.service.Submit(sess, req); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(sess))
}

func (h *WizardHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid session id"})
		return
	}
	h.service.Close(id)
	c.JSON(http.StatusOK, gin.H{"message": "session closed"})
}

func (h *WizardHandler) session(c *gin.Context) (*wizard.Session, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid session id"})
		return nil, false
	}
	sess, err := h.service.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "session not found"})
		return nil, false
	}
	return sess, true
}

func (h *WizardHandler) renderError(c *gin.Context, err error) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   verr.Key,
			Message: h.translator.T(verr.Key),
		})
	case errors.Is(err, wizard.ErrUnknownProduct), errors.Is(err, wizard.ErrUnknownFormat):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, wizard.ErrWrongStep):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, wizard.ErrSubmitFailed):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create order",
			Message: h.translator.T("order.submit-error"),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}

func stateResponse(sess *wizard.Session) models.WizardStateResponse {
	st := sess.Snapshot()
	return models.WizardStateResponse{
		SessionID:   st.SessionID,
		Step:        string(st.Step),
		Photo:       st.Photo,
		Products:    st.Products,
		Formats:     st.Formats,
		OrderNumber: st.OrderNumber,
	}
}
