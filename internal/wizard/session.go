package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"podarunok-backend/internal/models"
)

type Step string

const (
	StepUpload        Step = "upload"
	StepSelectProduct Step = "select-product"
	StepPreview       Step = "preview"
	StepCheckout      Step = "checkout"
	StepSuccess       Step = "success"
)

// Photo is the file a customer attached, held in memory until submission.
type Photo struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

// Session is one open wizard instance. All state is per-session and
// in-memory; nothing survives Close.
type Session struct {
	ID uuid.UUID

	mu          sync.Mutex
	step        Step
	photo       *Photo
	product     *models.Product
	format      *models.ProductFormat
	products    []models.Product
	formats     []models.ProductFormat
	preselected bool
	orderNumber string
	createdAt   time.Time
}

// State is a read-only snapshot handed to the transport layer.
type State struct {
	SessionID   string
	Step        Step
	Photo       *models.PhotoInfo
	Products    []models.Product
	Formats     []models.ProductFormat
	OrderNumber string
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		SessionID:   s.ID.String(),
		Step:        s.step,
		Products:    s.products,
		Formats:     s.formats,
		OrderNumber: s.orderNumber,
	}
	if s.photo != nil {
		st.Photo = &models.PhotoInfo{
			FileName: s.photo.FileName,
			Size:     s.photo.Size,
			MimeType: s.photo.MimeType,
		}
	}
	return st
}
