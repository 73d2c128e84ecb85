package handlers

import (
	"net/url"
	"strconv"
	"time"

	config "github.com/medconnecter/med_connecter/configs"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

// uploadFolders maps the kinds of direct browser uploads we allow to
// their Cloudinary folders. Reimbursement summaries are server-generated
// and never uploaded from the browser.
var uploadFolders = map[string]string{
	"avatar":       "med_connecter_profiles",
	"registration": "med_connecter_registrations",
}

// GenerateUploadSignature creates a signature so the front end can upload
// a file straight to Cloudinary. The kind query picks the destination
// folder; avatars are the default.
func GenerateUploadSignature(c *fiber.Ctx) error {
	kind := c.Query("kind", "avatar")
	folder, ok := uploadFolders[kind]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "kind must be avatar or registration"})
	}

	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{Folder: folder})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature":  signature,
		"timestamp":  timestamp,
		"api_key":    cld.Config.Cloud.APIKey,
		"cloud_name": cld.Config.Cloud.CloudName,
		"folder":     folder,
	})
}
