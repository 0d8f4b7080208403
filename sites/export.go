package sites

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"virasat/db"
	"virasat/models"
	"virasat/schedule"
	"virasat/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func publicSiteURL(siteID string) string {
	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		base = "http://localhost:3000"
	}
	return base + "/sites/" + siteID
}

// SiteQR serves a PNG QR code pointing at the public site page.
func SiteQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	count, err := db.SitesCollection.CountDocuments(r.Context(), bson.M{"siteid": siteID})
	if err != nil || count == 0 {
		utils.Error(w, http.StatusNotFound, "Site not found")
		return
	}

	png, err := qrcode.Encode(publicSiteURL(siteID), qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ExportSitePDF renders a one-page summary used in the review flow.
func ExportSitePDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var site models.HeritageSite
	if err := db.SitesCollection.FindOne(ctx, bson.M{"siteid": siteID}).Decode(&site); err != nil {
		utils.Error(w, http.StatusNotFound, "Site not found")
		return
	}

	hours, err := utils.FindAndDecode[models.VisitingHour](ctx, db.VisitingHoursCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch visiting hours")
		return
	}
	week := schedule.Normalize(hours)

	tickets, err := utils.FindAndDecode[models.TicketType](ctx, db.TicketTypesCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch ticket types")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, site.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", site.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Address: %s, %s, %s", site.Address, site.City, site.State))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Visiting hours")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, day := range week {
		line := fmt.Sprintf("%-10s closed", day.Day)
		if day.IsOpen {
			line = fmt.Sprintf("%-10s %s - %s", day.Day, day.OpeningTime, day.ClosingTime)
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Entry")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	if site.EntryType == models.EntryTypePaid {
		for _, ticket := range tickets {
			pdf.Cell(0, 6, fmt.Sprintf("%s: %.2f", ticket.VisitorType, ticket.Amount))
			pdf.Ln(6)
		}
	} else {
		pdf.Cell(0, 6, "Free entry")
		pdf.Ln(6)
	}

	if png, err := qrcode.Encode(publicSiteURL(siteID), qrcode.Medium, 256); err == nil {
		imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(png))
		pdf.ImageOptions("qr", 160, 20, 30, 30, false, imageOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=site-"+siteID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
