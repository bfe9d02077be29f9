package localindex

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/stcorp/muninn-sentinel5p/localindex/db"
	"github.com/stcorp/muninn-sentinel5p/model"
	"github.com/stcorp/muninn-sentinel5p/s5p"
	"github.com/stcorp/muninn-sentinel5p/util"
)

// DiscoverHandler is a handler for /localindex/discover
// @Title localIndexDiscoverHandler
// @Description searches the local product index
// @Accept  plain
// @Param   productType   query   string  false        "Restrict results to one registered product type"
// @Param   fileClass     query   string  false        "Restrict results to one file class, e.g. OFFL"
// @Param   fileType      query   string  false        "Restrict results to one file type, e.g. L2__NO2___"
// @Param   orbit         query   string  false        "Restrict results to one absolute orbit number"
// @Param   validityStart query   string  false        "The minimum (earliest) validity time, as RFC 3339"
// @Param   validityStop  query   string  false        "The maximum validity time, as RFC 3339"
// @Param   count         query   string  false        "The maximum number of results"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /localindex/discover [get]
type DiscoverHandler struct {
	Context Context
}

// NewDiscoverHandler creates a new handler using a database connection from
// the given provider
func NewDiscoverHandler(connectionProvider db.ConnectionProvider) (*DiscoverHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &DiscoverHandler{
		Context: Context{
			DB: database,
		},
	}, nil
}

// ServeHTTP implements the http.Handler interface for the DiscoverHandler type
func (h DiscoverHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	filter := db.SearchFilter{
		ProductType:  r.FormValue("productType"),
		FileClass:    r.FormValue("fileClass"),
		FileType:     r.FormValue("fileType"),
		ValidityFrom: time.Unix(0, 0),
		ValidityTo:   time.Now(),
	}

	if filter.ProductType != "" {
		if _, ok := s5p.Resolve(filter.ProductType); !ok {
			message := fmt.Sprintf("The productType value of %v is not a registered product type", filter.ProductType)
			util.LogAlert(&h.Context, message)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	if r.FormValue("orbit") != "" {
		orbit, err := strconv.Atoi(r.FormValue("orbit"))
		if err != nil {
			message := fmt.Sprintf("The orbit value of %v is invalid", r.FormValue("orbit"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
		filter.Orbit = &orbit
	}
	if r.FormValue("validityStart") != "" {
		if filter.ValidityFrom, err = time.Parse(time.RFC3339, r.FormValue("validityStart")); err != nil {
			message := fmt.Sprintf("Validity start value of %v is invalid.", r.FormValue("validityStart"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	if r.FormValue("validityStop") != "" {
		if filter.ValidityTo, err = time.Parse(time.RFC3339, r.FormValue("validityStop")); err != nil {
			message := fmt.Sprintf("Validity stop value of %v is invalid.", r.FormValue("validityStop"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}
	if r.FormValue("count") != "" {
		if filter.Limit, err = strconv.Atoi(r.FormValue("count")); err != nil {
			message := fmt.Sprintf("The count value of %v is invalid", r.FormValue("count"))
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			tx.Rollback()
			return
		}
	}

	multiResult, err := discoverProducts(tx, filter)
	if err != nil {
		message := fmt.Sprintf("Error searching for products: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	featureCollection, err := multiResult.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	w.Write([]byte(featureCollection.String()))
}

// ProductHandler is a handler for /localindex/product/{name}
// @Title localIndexProductHandler
// @Description returns the indexed metadata record for one product
// @Accept  plain
// @Param   name          path   string  false        "The name of the requested product"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /localindex/product/{name} [get]
type ProductHandler struct {
	Context Context
}

// NewProductHandler creates a new handler using a database connection from
// the given provider
func NewProductHandler(connectionProvider db.ConnectionProvider) (*ProductHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &ProductHandler{
		Context: Context{
			DB: database,
		},
	}, nil
}

func (h ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	productName, ok := mux.Vars(r)["name"]
	if !ok {
		message := "No product name found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	metadata, err := getProduct(tx, productName)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Product not found: %s", productName)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for product: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	feature, err := metadata.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting metadata to geojson: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	w.Write([]byte(feature.String()))
}

// ProductTypesHandler is a handler for /producttypes
// @Title productTypesHandler
// @Description lists every registered product type identifier
// @Accept  plain
// @Success 200 {array}  string
// @Router /producttypes [get]
type ProductTypesHandler struct {
	Context Context
}

// NewProductTypesHandler creates a new handler; the registry needs no
// database connection
func NewProductTypesHandler() *ProductTypesHandler {
	return &ProductTypesHandler{}
}

func (h ProductTypesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(s5p.ProductTypes())
	if err != nil {
		message := fmt.Sprintf("Error converting product types to JSON: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// AnalyzeHandler is a handler for /analyze
// @Title analyzeHandler
// @Description identifies and analyzes one product filename against the registry
// @Accept  plain
// @Param   path       query   string  true         "The product filename or path"
// @Param   footprint  query   bool    false        "True: attempt footprint extraction from the file contents"
// @Success 200 {object}  geojson.Feature
// @Failure 404 {object}  string
// @Router /analyze [post]
type AnalyzeHandler struct {
	Context Context
}

// NewAnalyzeHandler creates a new handler; identification and analysis work
// on the registry alone
func NewAnalyzeHandler() *AnalyzeHandler {
	return &AnalyzeHandler{}
}

func (h AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	productPath := r.FormValue("path")
	if productPath == "" {
		message := "No product path given"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}
	inspectContents, _ := strconv.ParseBool(r.FormValue("footprint"))

	plugin, ok := s5p.IdentifyProduct([]string{productPath})
	if !ok {
		message := fmt.Sprintf("No registered product type identifies `%s`", filepath.Base(productPath))
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	record, err := plugin.Analyze([]string{productPath}, inspectContents)
	if err != nil {
		message := fmt.Sprintf("Error analyzing product: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	feature, err := record.GeoJSONFeature()
	if err != nil {
		message := fmt.Sprintf("Error converting metadata to geojson: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	info := model.ArchiveInfo{
		ProductType:  plugin.ProductType(),
		PhysicalName: filepath.Base(productPath),
		ArchivePath:  plugin.ArchivePath(record),
	}
	info.Apply(feature)

	w.Write([]byte(feature.String()))
}
