package sites

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"virasat/db"
	"virasat/models"
	"virasat/rdx"
	"virasat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func dependentCollections() []*mongo.Collection {
	return []*mongo.Collection{
		db.VisitingHoursCollection,
		db.SiteMediaCollection,
		db.TicketTypesCollection,
		db.TransportationCollection,
		db.TranslationsCollection,
	}
}

// GetSiteDetail assembles the aggregate the editor hydrates from: the core
// record plus every dependent row set.
func GetSiteDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, _ := rdx.RdxGet("site:" + siteID); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var site models.HeritageSite
	err := db.SitesCollection.FindOne(ctx, bson.M{"siteid": siteID}).Decode(&site)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  http.StatusNotFound,
				"message": "Site not found",
			})
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}

	detail := models.SiteDetail{Site: &site}

	detail.VisitingHours, err = utils.FindAndDecode[models.VisitingHour](ctx, db.VisitingHoursCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch visiting hours")
		return
	}
	detail.Media, err = utils.FindAndDecode[models.SiteMedia](ctx, db.SiteMediaCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	detail.TicketTypes, err = utils.FindAndDecode[models.TicketType](ctx, db.TicketTypesCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch ticket types")
		return
	}
	detail.Transportation, err = utils.FindAndDecode[models.Transportation](ctx, db.TransportationCollection, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch transportation")
		return
	}

	data := utils.ToJSON(detail)
	rdx.RdxSet("site:"+siteID, string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// replaceDependents implements full-replace semantics: every dependent row
// for the site is dropped and rewritten from the payload.
func replaceDependents(ctx context.Context, siteID string, payload *models.SitePayload) error {
	for _, coll := range dependentCollections() {
		if _, err := coll.DeleteMany(ctx, bson.M{"siteid": siteID}); err != nil {
			return err
		}
	}

	if len(payload.VisitingHours) > 0 {
		rows := make([]interface{}, 0, len(payload.VisitingHours))
		for _, row := range payload.VisitingHours {
			row.SiteID = siteID
			rows = append(rows, row)
		}
		if _, err := db.VisitingHoursCollection.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	if len(payload.Media) > 0 {
		rows := make([]interface{}, 0, len(payload.Media))
		for _, row := range payload.Media {
			row.SiteID = siteID
			if row.MediaID == "" {
				row.MediaID = "m" + utils.GetUUID()
			}
			rows = append(rows, row)
		}
		if _, err := db.SiteMediaCollection.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	if len(payload.TicketTypes) > 0 {
		rows := make([]interface{}, 0, len(payload.TicketTypes))
		for _, row := range payload.TicketTypes {
			row.SiteID = siteID
			rows = append(rows, row)
		}
		if _, err := db.TicketTypesCollection.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	if len(payload.Transportation) > 0 {
		rows := make([]interface{}, 0, len(payload.Transportation))
		for _, row := range payload.Transportation {
			row.SiteID = siteID
			rows = append(rows, row)
		}
		if _, err := db.TransportationCollection.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	if len(payload.Translations) > 0 {
		rows := make([]interface{}, 0, len(payload.Translations))
		for _, row := range payload.Translations {
			row.SiteID = siteID
			rows = append(rows, row)
		}
		if _, err := db.TranslationsCollection.InsertMany(ctx, rows); err != nil {
			return err
		}
	}

	return nil
}
