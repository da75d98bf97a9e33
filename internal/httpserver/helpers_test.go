package httpserver

import (
	"bytes"
	"context"
	"io"
	"log"
	"mime/multipart"
	"testing"

	"github.com/gin-gonic/gin"

	"telecom-catalog/internal/domain"
	offerrepo "telecom-catalog/internal/repository/offer"
	productrepo "telecom-catalog/internal/repository/product"
	offersvc "telecom-catalog/internal/service/offer"
	productsvc "telecom-catalog/internal/service/product"
	"telecom-catalog/internal/storage"
)

// In-memory repository fakes so handler tests exercise the real services
// without a database.

type fakeOfferRepo struct {
	byID   map[int64]domain.Offer
	nextID int64
}

func newFakeOfferRepo(seed ...domain.Offer) *fakeOfferRepo {
	r := &fakeOfferRepo{byID: make(map[int64]domain.Offer)}
	for _, o := range seed {
		if o.ID >= r.nextID {
			r.nextID = o.ID
		}
		r.byID[o.ID] = o
	}
	return r
}

func (r *fakeOfferRepo) List(_ context.Context) ([]domain.Offer, error) {
	var out []domain.Offer
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOfferRepo) ListByType(_ context.Context, offerType string) ([]domain.Offer, error) {
	var out []domain.Offer
	for _, o := range r.byID {
		if o.Type == offerType {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) GetByID(_ context.Context, id int64) (*domain.Offer, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *fakeOfferRepo) Create(_ context.Context, o domain.Offer) (*domain.Offer, error) {
	r.nextID++
	o.ID = r.nextID
	r.byID[o.ID] = o
	return &o, nil
}

func (r *fakeOfferRepo) Update(_ context.Context, o domain.Offer) (*domain.Offer, error) {
	if _, ok := r.byID[o.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.byID[o.ID] = o
	return &o, nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeProductRepo struct {
	byID   map[int64]domain.Product
	nextID int64
}

func newFakeProductRepo(seed ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[int64]domain.Product)}
	for _, p := range seed {
		if p.ID >= r.nextID {
			r.nextID = p.ID
		}
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByOfferID(_ context.Context, offerID int64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.byID {
		if p.Offer != nil && p.Offer.ID == offerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return &p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	r.byID[p.ID] = p
	return &p, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubFiles struct {
	url      string
	err      error
	saves    int
	lastName string
}

func (s *stubFiles) Save(name string, _ []byte) (string, error) {
	s.saves++
	s.lastName = name
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

var (
	_ offerrepo.Repository   = (*fakeOfferRepo)(nil)
	_ productrepo.Repository = (*fakeProductRepo)(nil)
	_ storage.FileStore      = (*stubFiles)(nil)
)

func newTestRouter(offers *fakeOfferRepo, products *fakeProductRepo, files storage.FileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	return buildRouter(logger, nil, Deps{
		OfferSvc:   offersvc.New(offers),
		ProductSvc: productsvc.New(products, offers),
		Files:      files,
	})
}

func multipartForm(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}
