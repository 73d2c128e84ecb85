package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/medconnecter/med_connecter/configs"
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateReimbursementSummary renders a PDF summary of a completed
// appointment, uploads it and records a Document row. Patients hand the
// PDF to their insurer.
func GenerateReimbursementSummary(appointment models.Appointment, doctor models.Doctor) (*models.Document, error) {
	htmlData, err := renderSummaryHTML(appointment, doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to render summary HTML: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, appointment.PatientID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to upload summary: %w", err)
	}

	document := models.Document{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		Kind:          "reimbursement_summary",
		URL:           uploadURL,
	}
	if err := database.DB.Create(&document).Error; err != nil {
		return nil, err
	}

	log.Printf("✅ Generated reimbursement summary for appointment %s", appointment.ID)
	return &document, nil
}

func renderSummaryHTML(appointment models.Appointment, doctor models.Doctor) (string, error) {
	tmpl, err := template.ParseFiles("templates/reimbursement_summary.html")
	if err != nil {
		return "", err
	}

	fee := doctor.ConsultationFee
	data := struct {
		PatientName string
		DoctorName  string
		Specialty   string
		Date        string
		StartTime   string
		EndTime     string
		Mode        string
		Fee         string
		GeneratedAt string
	}{
		PatientName: appointment.Patient.FirstName + " " + appointment.Patient.LastName,
		DoctorName:  doctor.User.FirstName + " " + doctor.User.LastName,
		Specialty:   doctor.Specialty,
		Date:        appointment.Date,
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		Mode:        appointment.Mode,
		Fee:         fmt.Sprintf("€%.2f", fee),
		GeneratedAt: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, patientID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("summaries/%s_%s", patientID, uuid.New().String()),
		Folder:       "med_connecter_documents",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
