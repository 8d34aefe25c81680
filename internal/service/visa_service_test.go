package service

import (
	"testing"

	"travel-backoffice-be/internal/dto"
	"travel-backoffice-be/internal/pkg/serverutils"
	"travel-backoffice-be/pkg/access"
	"travel-backoffice-be/pkg/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVisa() *dto.VisaApplicationRequest {
	return &dto.VisaApplicationRequest{
		ApplicantName:      "Imran Khan",
		PassportNumber:     "P1234567",
		Nationality:        "Indian",
		DestinationCountry: "Saudi Arabia",
		VisaType:           "umrah",
		TravelDate:         "2030-01-10",
		ReturnDate:         "2030-01-25",
		ProcessingFee:      decimal.RequireFromString("1500"),
		EmbassyFee:         decimal.RequireFromString("3000"),
		ServiceFee:         decimal.RequireFromString("500.50"),
	}
}

func TestVisaApplicationLifecycle(t *testing.T) {
	env := newTestEnv(t)
	files, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	svc := NewVisaService(env.factory, files, env.publisher, nil, env.log)

	agency := env.addUser(t, access.RoleAgencyAdmin, nil)
	super := env.addUser(t, access.RoleSuperAdmin, nil)

	app, err := svc.Create(bg, agency, sampleVisa())
	require.NoError(t, err)
	assert.Equal(t, "draft", app.Status)
	assert.Regexp(t, `^VA[0-9A-F]{8}$`, app.ApplicationNumber)
	assert.True(t, decimal.RequireFromString("5000.50").Equal(app.TotalFee))

	t.Run("draft cannot be processed", func(t *testing.T) {
		_, err := svc.UpdateStatus(bg, super, app.Id, &dto.VisaStatusRequest{Status: "under_review"})
		requireKind(t, err, serverutils.ErrValidation)
	})

	t.Run("submit requires passport and photo", func(t *testing.T) {
		_, err := svc.Submit(bg, agency, app.Id, &dto.SubmitVisaRequest{Confirm: true})
		requireKind(t, err, serverutils.ErrValidation)
	})

	for _, docType := range []string{"passport", "photo"} {
		_, err := svc.UploadDocument(bg, agency, app.Id,
			&dto.UploadVisaDocumentRequest{DocumentType: docType},
			&dto.UploadedFile{FileName: docType + ".pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")})
		require.NoError(t, err)
	}

	submitted, err := svc.Submit(bg, agency, app.Id, &dto.SubmitVisaRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, "submitted", submitted.Status)

	t.Run("submitted application is no longer editable", func(t *testing.T) {
		_, err := svc.Update(bg, agency, app.Id, sampleVisa())
		require.Error(t, err)
	})

	t.Run("owner cannot process", func(t *testing.T) {
		_, err := svc.UpdateStatus(bg, agency, app.Id, &dto.VisaStatusRequest{Status: "under_review"})
		requireKind(t, err, serverutils.ErrForbidden)
	})

	steps := []struct {
		to      string
		wantErr bool
	}{
		{"approved", true},
		{"under_review", false},
		{"approved", false},
		{"issued", false},
		{"rejected", true},
	}
	for _, step := range steps {
		t.Run("superadmin to "+step.to, func(t *testing.T) {
			res, err := svc.UpdateStatus(bg, super, app.Id, &dto.VisaStatusRequest{Status: step.to})
			if step.wantErr {
				requireKind(t, err, serverutils.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, step.to, res.Status)
		})
	}
}
