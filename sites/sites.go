package sites

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"virasat/db"
	"virasat/globals"
	"virasat/models"
	"virasat/mq"
	"virasat/rdx"
	"virasat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSites serves the site manager listing with search/status/experience/
// site-type filters. The unfiltered first page is cached.
func GetSites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)
	unfiltered := opts.Search == "" && opts.Status == "" && opts.Experience == "" && opts.SiteType == "" && opts.Page == 1

	if unfiltered {
		if cached, _ := rdx.RdxGet("sites"); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	filter := bson.M{}
	if opts.Search != "" {
		filter["name"] = bson.M{"$regex": opts.Search, "$options": "i"}
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.Experience != "" {
		filter["experience"] = opts.Experience
	}
	if opts.SiteType != "" {
		filter["site_type"] = opts.SiteType
	}

	findOpts := options.Find().
		SetSort(bson.M{"updated_at": -1}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	sites, err := utils.FindAndDecode[models.HeritageSite](ctx, db.SitesCollection, filter, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch sites")
		return
	}

	data := utils.ToJSON(sites)
	if unfiltered {
		rdx.RdxSet("sites", string(data))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func validatePayload(payload *models.SitePayload) string {
	if strings.TrimSpace(payload.Site.Name) == "" {
		return "site name is required"
	}
	if strings.TrimSpace(payload.Site.Address) == "" {
		return "address is required"
	}
	return ""
}

// CreateSite accepts the full-replace payload and fans it out into the
// per-entity collections.
func CreateSite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var payload models.SitePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.SiteResult{Success: false, Error: "invalid payload"})
		return
	}
	if msg := validatePayload(&payload); msg != "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.SiteResult{Success: false, Error: msg})
		return
	}

	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok {
		http.Error(w, "Invalid user", http.StatusBadRequest)
		return
	}

	site := payload.Site
	site.SiteID = utils.GenerateID(14)
	site.CreatedBy = requestingUserID
	site.CreatedAt = time.Now()
	site.UpdatedAt = site.CreatedAt

	if _, err := db.SitesCollection.InsertOne(ctx, site); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.SiteResult{Success: false, Error: "error creating site"})
		return
	}

	if err := replaceDependents(ctx, site.SiteID, &payload); err != nil {
		log.Printf("Fan-out failed for new site %s: %v", site.SiteID, err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.SiteResult{Success: false, Error: "error storing site details"})
		return
	}

	invalidateSiteCache(site.SiteID)
	go mq.Emit(ctx, "site-created", models.Index{EntityType: "site", EntityId: site.SiteID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, models.SiteResult{Success: true, SiteID: site.SiteID})
}

// UpdateSite replaces the core record and every dependent row. Saves are
// full-replace; the payload is authoritative.
func UpdateSite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	siteID := ps.ByName("siteid")

	var payload models.SitePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.SiteResult{Success: false, Error: "invalid payload"})
		return
	}
	if msg := validatePayload(&payload); msg != "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, models.SiteResult{Success: false, Error: msg})
		return
	}

	var existing models.HeritageSite
	if err := db.SitesCollection.FindOne(ctx, bson.M{"siteid": siteID}).Decode(&existing); err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, models.SiteResult{Success: false, Error: "site not found"})
		return
	}

	requestingUserID, _ := ctx.Value(globals.UserIDKey).(string)

	site := payload.Site
	site.SiteID = siteID
	site.CreatedBy = existing.CreatedBy
	site.CreatedAt = existing.CreatedAt
	site.UpdatedBy = requestingUserID
	site.UpdatedAt = time.Now()

	if _, err := db.SitesCollection.ReplaceOne(ctx, bson.M{"siteid": siteID}, site); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.SiteResult{Success: false, Error: "error updating site"})
		return
	}

	if err := replaceDependents(ctx, siteID, &payload); err != nil {
		log.Printf("Fan-out failed for site %s: %v", siteID, err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, models.SiteResult{Success: false, Error: "error storing site details"})
		return
	}

	invalidateSiteCache(siteID)
	go mq.Emit(ctx, "site-updated", models.Index{EntityType: "site", EntityId: siteID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, models.SiteResult{Success: true, SiteID: siteID})
}

// DeleteSite removes the core record and all dependent rows.
func DeleteSite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	siteID := ps.ByName("siteid")

	res, err := db.SitesCollection.DeleteOne(ctx, bson.M{"siteid": siteID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting site")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Site not found")
		return
	}

	for _, coll := range dependentCollections() {
		if _, err := coll.DeleteMany(ctx, bson.M{"siteid": siteID}); err != nil {
			log.Printf("Failed deleting dependents of %s: %v", siteID, err)
		}
	}

	invalidateSiteCache(siteID)
	go mq.Emit(ctx, "site-deleted", models.Index{EntityType: "site", EntityId: siteID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, models.SiteResult{Success: true, SiteID: siteID})
}

func invalidateSiteCache(siteID string) {
	if _, err := rdx.RdxDel("site:" + siteID); err != nil {
		log.Printf("Cache deletion failed for site ID: %s. Error: %v", siteID, err)
	}
	rdx.RdxDel("sites")
}
