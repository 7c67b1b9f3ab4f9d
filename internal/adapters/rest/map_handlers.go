package rest

import (
	"net/http"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/port"
	"marketplace-service/internal/core/port/usecases_port"
)

type MapHandler struct {
	getMapViewUC      usecases_port.GetMapViewUseCase
	getClustersUC     usecases_port.GetMapClustersUseCase
	refreshClustersUC usecases_port.RefreshMapClustersUseCase
}

func NewMapHandler(
	getMapViewUC usecases_port.GetMapViewUseCase,
	getClustersUC usecases_port.GetMapClustersUseCase,
	refreshClustersUC usecases_port.RefreshMapClustersUseCase,
) *MapHandler {
	return &MapHandler{
		getMapViewUC:      getMapViewUC,
		getClustersUC:     getClustersUC,
		refreshClustersUC: refreshClustersUC,
	}
}

// GetMapView обрабатывает GET /api/v1/map/view?latitude=..&longitude=..&radiusKm=..
func (h *MapHandler) GetMapView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	center, ok := parseCoordinate(query, "latitude", "longitude")
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "latitude and longitude are required")
		return
	}
	radiusKm := 5.0
	if v := parseFloat(query, "radiusKm"); v != nil {
		radiusKm = *v
	}

	view, err := h.getMapViewUC.Execute(r.Context(), center, radiusKm)
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, MapViewResponse{
		Listings:      toListingResponses(view.Listings),
		ListingCount:  view.ListingCount,
		PropertyCount: view.PropertyCount,
		AvgPrice:      view.AvgPrice,
		Clusters:      toClusterResponses(view.Clusters),
	})
}

// GetClusters обрабатывает GET /api/v1/map/clusters
func (h *MapHandler) GetClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.getClustersUC.Execute(r.Context())
	if err != nil {
		HandleError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toClusterResponses(clusters))
}

// RefreshClusters обрабатывает POST /api/v1/map/clusters/refresh.
// Без координат пересчитываются все кластеры.
func (h *MapHandler) RefreshClusters(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	handlerLogger := logger.WithFields(port.Fields{"handler": "RefreshClusters"})

	query := r.URL.Query()

	refreshed := 0
	var err error
	if center, ok := parseCoordinate(query, "latitude", "longitude"); ok {
		refreshed, err = h.refreshClustersUC.Execute(r.Context(), &center)
	} else {
		refreshed, err = h.refreshClustersUC.Execute(r.Context(), nil)
	}
	if err != nil {
		HandleError(w, err)
		return
	}

	handlerLogger.Info("clusters refreshed", port.Fields{"refreshed_count": refreshed})
	RespondWithJSON(w, http.StatusOK, map[string]int{"refreshed_count": refreshed})
}
