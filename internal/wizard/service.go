// Package wizard drives the linear order flow: photo upload, product and
// format selection, preview, checkout, submission. Steps only move forward
// except for explicit back transitions.
package wizard

import (
	"bytes"
	"image"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"podarunok-backend/internal/catalog"
	"podarunok-backend/internal/models"
	"podarunok-backend/internal/store"
)

const (
	// DepositAmount is the fixed prepayment, in hryvnia, collected to
	// confirm an order; the remainder is due on delivery.
	DepositAmount = 170

	maxPhotoBytes = 10 << 20 // 10 MiB

	orderNumberPrefix = "ORD-"
)

// PhotoStorage stores photo bytes and returns the storage path and the
// public URL recorded on the photo row.
type PhotoStorage interface {
	UploadPhoto(photoID uuid.UUID, filename, contentType string, data []byte) (string, string, error)
}

type Service struct {
	store   store.Store
	storage PhotoStorage
	catalog *catalog.Loader
	logger  *zap.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	now func() time.Time
}

func NewService(st store.Store, storage PhotoStorage, cat *catalog.Loader, logger *zap.Logger) *Service {
	return &Service{
		store:    st,
		storage:  storage,
		catalog:  cat,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
}

// Open creates a session at the upload step. A product/format pair picked
// directly from the catalog is resolved against the store and preselected;
// that pair later lets preview skip the select-product step on "back".
func (s *Service) Open(productID, formatID string) (*Session, error) {
	sess := &Session{
		ID:        uuid.New(),
		step:      StepUpload,
		createdAt: s.now(),
	}

	if productID != "" && formatID != "" {
		var products []models.Product
		err := s.store.Select("products", store.Query{
			Filters: []store.Filter{{Column: "id", Value: productID}},
		}, &products)
		if err != nil || len(products) == 0 {
			if err != nil {
				s.logger.Error("resolving preselected product", zap.Error(err))
			}
			return nil, ErrUnknownProduct
		}

		var formats []models.ProductFormat
		err = s.store.Select("product_formats", store.Query{
			Filters: []store.Filter{{Column: "id", Value: formatID}},
		}, &formats)
		if err != nil || len(formats) == 0 || formats[0].ProductID != productID {
			if err != nil {
				s.logger.Error("resolving preselected format", zap.Error(err))
			}
			return nil, ErrUnknownFormat
		}

		sess.product = &products[0]
		sess.format = &formats[0]
		sess.preselected = true
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *Service) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return sess, nil
}

// Close abandons the session. Submitted records are untouched; the next
// session always starts at the upload step with cleared state.
func (s *Service) Close(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// AttachPhoto validates and holds the selected file. Rejections leave the
// session at the upload step with no photo set.
func (s *Service) AttachPhoto(sess *Session, photo Photo) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepUpload {
		return ErrWrongStep
	}
	if !strings.HasPrefix(photo.MimeType, "image/") {
		return ErrNotImage
	}
	if photo.Size > maxPhotoBytes {
		return ErrPhotoTooLarge
	}

	sess.photo = &photo
	return nil
}

// Continue advances from upload: straight to preview when a product and
// format are already chosen, otherwise into product selection with the
// active catalog loaded.
func (s *Service) Continue(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepUpload {
		return ErrWrongStep
	}
	if sess.photo == nil {
		return ErrMissingFields
	}

	if sess.product != nil && sess.format != nil {
		sess.step = StepPreview
		return nil
	}

	sess.products = s.catalog.Products()
	sess.step = StepSelectProduct
	return nil
}

// SelectProduct is the first tier of the two-tier pick: it fixes the
// product and loads its formats. The step does not advance until a format
// is chosen.
func (s *Service) SelectProduct(sess *Session, productID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepSelectProduct {
		return ErrWrongStep
	}
	for i := range sess.products {
		if sess.products[i].ID == productID {
			sess.product = &sess.products[i]
			sess.format = nil
			sess.formats = s.catalog.Formats(productID)
			return nil
		}
	}
	return ErrUnknownProduct
}

func (s *Service) SelectFormat(sess *Session, formatID string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepSelectProduct || sess.product == nil {
		return ErrWrongStep
	}
	for i := range sess.formats {
		if sess.formats[i].ID == formatID {
			sess.format = &sess.formats[i]
			sess.step = StepPreview
			return nil
		}
	}
	return ErrUnknownFormat
}

// Preview reports photo, product, format and the price breakdown. A format
// priced below the deposit yields a negative remainder; that matches the
// source behavior and is not guarded here.
func (s *Service) Preview(sess *Session) (*models.PreviewResponse, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepPreview || sess.product == nil || sess.format == nil {
		return nil, ErrWrongStep
	}

	return &models.PreviewResponse{
		Photo: models.PhotoInfo{
			FileName: sess.photo.FileName,
			Size:     sess.photo.Size,
			MimeType: sess.photo.MimeType,
		},
		Product: *sess.product,
		Format:  *sess.format,
		Price: models.PriceBreakdown{
			TotalPrice:    sess.format.Price,
			DepositAmount: DepositAmount,
			DueOnDelivery: sess.format.Price - DepositAmount,
		},
	}, nil
}

// ProceedToCheckout moves from preview to the contact form; no new input
// is required.
func (s *Service) ProceedToCheckout(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepPreview {
		return ErrWrongStep
	}
	sess.step = StepCheckout
	return nil
}

// Back returns to the immediately preceding step. From preview it skips
// select-product when the product/format pair was preselected at open.
func (s *Service) Back(sess *Session) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.step {
	case StepSelectProduct:
		sess.step = StepUpload
	case StepPreview:
		if sess.preselected {
			sess.step = StepUpload
		} else {
			sess.step = StepSelectProduct
		}
	case StepCheckout:
		sess.step = StepPreview
	default:
		return ErrWrongStep
	}
	return nil
}

// Submit runs the submission procedure: decode pixel dimensions, store the
// photo bytes, insert the photo row, then insert the order row referencing
// it. On any failure the session stays in checkout so the customer can
// resubmit; an already-inserted photo row is not rolled back.
func (s *Service) Submit(sess *Session, form models.CheckoutRequest) (string, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.step != StepCheckout {
		return "", ErrWrongStep
	}
	if form.Name == "" || form.Phone == "" || sess.photo == nil || sess.product == nil || sess.format == nil {
		return "", ErrMissingFields
	}

	delivery := form.Delivery
	if delivery == "" {
		delivery = models.DeliveryNovaPoshta
	}
	if delivery != models.DeliveryNovaPoshta && delivery != models.DeliveryUkrposhta {
		return "", ErrBadDelivery
	}

	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(sess.photo.Data))
	if err != nil {
		s.logger.Error("decoding photo", zap.String("file_name", sess.photo.FileName), zap.Error(err))
		return "", ErrSubmitFailed
	}

	photoID := uuid.New()
	_, publicURL, err := s.storage.UploadPhoto(photoID, sess.photo.FileName, sess.photo.MimeType, sess.photo.Data)
	if err != nil {
		s.logger.Error("uploading photo bytes", zap.Error(err))
		return "", ErrSubmitFailed
	}

	var photo models.UploadedPhoto
	err = s.store.InsertOne("uploaded_photos", models.UploadedPhoto{
		FileName:      sess.photo.FileName,
		FilePath:      publicURL,
		FileSize:      sess.photo.Size,
		MimeType:      sess.photo.MimeType,
		Width:         imgCfg.Width,
		Height:        imgCfg.Height,
		ThumbnailPath: publicURL,
	}, &photo)
	if err != nil {
		s.logger.Error("inserting photo record", zap.Error(err))
		return "", ErrSubmitFailed
	}

	orderNumber := orderNumberPrefix + strconv.FormatInt(s.now().UnixMilli(), 10)

	var order models.Order
	err = s.store.InsertOne("orders", models.Order{
		OrderNumber:     orderNumber,
		CustomerName:    form.Name,
		CustomerPhone:   form.Phone,
		CustomerEmail:   form.Email,
		ProductID:       sess.product.ID,
		FormatID:        sess.format.ID,
		PhotoID:         photo.ID,
		TotalPrice:      sess.format.Price,
		DepositAmount:   DepositAmount,
		DeliveryMethod:  delivery,
		DeliveryAddress: form.Address,
		Comment:         form.Comment,
		Status:          models.OrderStatusNew,
		PaymentStatus:   models.PaymentStatusPending,
	}, &order)
	if err != nil {
		// The photo row from the step above stays behind with no owning
		// order; there is no cleanup path for it.
		s.logger.Error("inserting order", zap.String("photo_id", photo.ID), zap.Error(err))
		return "", ErrSubmitFailed
	}

	sess.orderNumber = orderNumber
	sess.step = StepSuccess
	return orderNumber, nil
}
