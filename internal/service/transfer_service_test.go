package service

import (
	"context"
	"testing"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")
)

func transferInput() TransferInput {
	return TransferInput{DomainName: "AI.com", BuyerName: "Jane", BuyerEmail: "jane@example.com", BuyerPhone: "+1 555"}
}

func TestCheckPaymentProof(t *testing.T) {
	ct, err := CheckPaymentProof(pngBytes, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)

	ct, err = CheckPaymentProof(pdfBytes, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)

	_, err = CheckPaymentProof([]byte("just some text"), 1<<20)
	assert.ErrorIs(t, err, ErrProofNotAllowed)
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = CheckPaymentProof(pngBytes, 8)
	assert.ErrorIs(t, err, ErrProofTooLarge)
}

func TestTransferService_Submit_WithProof(t *testing.T) {
	repo := new(MockTransferRepository)
	storage := new(MockObjectStorage)
	pub := new(MockPublisher)
	notifier := new(MockNotifier)
	svc := NewTransferService(repo, storage, pub, notifier, logger.NewNop(), 0)
	ctx := context.Background()

	storage.On("Upload", ctx, "payment_proofs", "receipt.png", "image/png", pngBytes).
		Return("http://minio:9000/storefront/payment_proofs/x.png", nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(tr *entity.TransferRequest) bool {
		return tr.DomainName == "ai.com" &&
			tr.Status == entity.TransferStatusPending &&
			tr.AdminNotes == "New purchase request via transfer form." &&
			tr.PaymentScreenshotURL != ""
	})).Return("t1", nil).Once()
	pub.On("Publish", ctx, SubjectTransferCreated, mock.MatchedBy(func(ev TransferCreatedEvent) bool { return ev.HasProof })).Return(nil).Once()
	notifier.On("TransferSubmitted", ctx, mock.AnythingOfType("*entity.TransferRequest")).Return().Once()

	tr, err := svc.Submit(ctx, transferInput(), &Attachment{FileName: "receipt.png", Data: pngBytes})
	require.NoError(t, err)
	assert.Equal(t, "t1", tr.ID)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTransferService_Submit_RejectsBadProofBeforeSaving(t *testing.T) {
	repo := new(MockTransferRepository)
	storage := new(MockObjectStorage)
	svc := NewTransferService(repo, storage, nil, nil, logger.NewNop(), 0)

	_, err := svc.Submit(context.Background(), transferInput(), &Attachment{FileName: "x.txt", Data: []byte("hello")})
	assert.ErrorIs(t, err, ErrProofNotAllowed)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransferService_Submit_WithoutProof(t *testing.T) {
	repo := new(MockTransferRepository)
	svc := NewTransferService(repo, new(MockObjectStorage), nil, nil, logger.NewNop(), 0)
	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*entity.TransferRequest")).Return("t2", nil).Once()

	tr, err := svc.Submit(ctx, transferInput(), nil)
	require.NoError(t, err)
	assert.Empty(t, tr.PaymentScreenshotURL)
}

func TestTransferService_UpdateStatus(t *testing.T) {
	repo := new(MockTransferRepository)
	svc := NewTransferService(repo, nil, nil, nil, logger.NewNop(), 0)
	ctx := context.Background()

	repo.On("GetByID", ctx, "t1").Return(&entity.TransferRequest{ID: "t1", Status: entity.TransferStatusPending}, nil).Twice()
	repo.On("UpdateStatus", ctx, "t1", entity.TransferStatusCompleted, "funds received").Return(nil).Once()

	tr, err := svc.UpdateStatus(ctx, "t1", entity.TransferStatusCompleted, " funds received ")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusCompleted, tr.Status)

	_, err = svc.UpdateStatus(ctx, "t1", "refunded", "")
	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
	repo.AssertExpectations(t)
}
