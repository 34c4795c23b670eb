package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tablero/internal/domain"
	"tablero/internal/handler"
	"tablero/internal/service"
	"tablero/internal/stream"
	"tablero/mocks"
)

func remitoRouter(repo *mocks.MockRemitoRepo, signatures *mocks.MockSignatureStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewRemitoService(repo, signatures, new(mocks.MockNotifier), stream.NewHub())
	h := handler.NewRemitoHandler(svc)
	r := gin.New()
	r.GET("/remitos/history/export", h.ExportHistory)
	r.GET("/remitos/history/:id", h.HistoryDetail)
	return r
}

func TestRemitoHandler_ExportHistory(t *testing.T) {
	repo := new(mocks.MockRemitoRepo)
	repo.On("ListHistory", mock.Anything).Return([]domain.Remito{}, nil)
	r := remitoRouter(repo, new(mocks.MockSignatureStore))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/remitos/history/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "entregados_")
}

func TestRemitoHandler_ExportHistory_ListFailure(t *testing.T) {
	repo := new(mocks.MockRemitoRepo)
	repo.On("ListHistory", mock.Anything).Return(nil, errors.New("connection reset"))
	r := remitoRouter(repo, new(mocks.MockSignatureStore))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/remitos/history/export", nil)
	r.ServeHTTP(w, req)

	// The failure answers as a plain JSON envelope, not an attachment.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRemitoHandler_HistoryDetail(t *testing.T) {
	rem := domain.Remito{
		ID:               uuid.New(),
		Client:           "ACME SA",
		PreparationState: domain.PreparationEntregado,
		DeliveryProof:    &domain.DeliveryProof{SignerName: "Juan Pérez", SignatureS3Key: "firmas/x"},
	}
	repo := new(mocks.MockRemitoRepo)
	repo.On("GetHistoryByID", mock.Anything, rem.ID).Return(&rem, nil)
	signatures := new(mocks.MockSignatureStore)
	signatures.On("PresignedURL", mock.Anything, "firmas/x", mock.AnythingOfType("int64")).
		Return("https://bucket.example/firmas/x", nil)
	r := remitoRouter(repo, signatures)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/remitos/history/"+rem.ID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signature_url":"https://bucket.example/firmas/x"`)
}

func TestRemitoHandler_HistoryDetail_NotFound(t *testing.T) {
	repo := new(mocks.MockRemitoRepo)
	repo.On("GetHistoryByID", mock.Anything, mock.Anything).Return(nil, domain.ErrRemitoNotFound)
	r := remitoRouter(repo, new(mocks.MockSignatureStore))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/remitos/history/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "REMITO_NOT_FOUND")
}
