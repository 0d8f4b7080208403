package sites

import (
	"net/http"
	"strings"

	"virasat/db"
	"virasat/filemgr"
	"virasat/globals"
	"virasat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadSiteMedia stores an uploaded gallery/audio/map file and returns its
// stored name and public path. The row itself is written on the next save;
// the editor only needs a sourceFile reference and a preview URL here.
func UploadSiteMedia(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	siteID := ps.ByName("siteid")

	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		http.Error(w, "Invalid or missing user ID", http.StatusUnauthorized)
		return
	}

	count, err := db.SitesCollection.CountDocuments(r.Context(), bson.M{"siteid": siteID})
	if err != nil || count == 0 {
		utils.Error(w, http.StatusNotFound, "Site not found")
		return
	}

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	picType := filemgr.PicPhoto
	switch strings.ToLower(r.FormValue("kind")) {
	case "audio":
		picType = filemgr.PicAudio
	case "video":
		picType = filemgr.PicVideo
	case "map":
		picType = filemgr.PicMap
	}

	fileName, err := filemgr.SaveFormFile(r.MultipartForm, "media", filemgr.EntitySite, picType, true)
	if err != nil {
		http.Error(w, "Media upload failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"fileName": fileName,
		"url":      "/static/uploads/site/" + filemgr.PictureSubfolders[picType] + "/" + fileName,
		"kind":     filemgr.DetectMediaKind(fileName),
	})
}
