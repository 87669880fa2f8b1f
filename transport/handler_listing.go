package transport

import (
	"net/http"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	utilsContext "github.com/muhammadheryan/agri-market/utils/context"
	validatorx "github.com/muhammadheryan/agri-market/utils/validator"
)

// Product (seller) and buyer request handlers share one implementation;
// the routes bind the listing type.

func listingQuery(r *http.Request) (*model.ListingQuery, error) {
	q := r.URL.Query()
	req := &model.ListingQuery{
		Category: q.Get("category"),
		City:     q.Get("city"),
		State:    q.Get("state"),
		Page:     queryInt(r, "page"),
		PerPage:  queryInt(r, "per_page"),
	}

	var err error
	if req.Lat, err = queryFloat(r, "lat"); err != nil {
		return nil, err
	}
	if req.Lng, err = queryFloat(r, "lng"); err != nil {
		return nil, err
	}
	if req.RadiusKm, err = queryFloat(r, "radius_km"); err != nil {
		return nil, err
	}
	if err := validatorx.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

// listListings handler
// @Summary Browse active listings
// @Description Filter by category, city or state, or pass lat, lng and radius_km together for a radius search ordered by distance. Every returned listing gets one view.
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param city query string false "City"
// @Param state query string false "State"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius_km query number false "Radius in km"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ListingListResponse
// @Failure 400 {object} Response
// @Router /products [get]
// @Router /buyer-requests [get]
func (s *RestHandler) listListings(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := listingQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := s.ListingApp.List(r.Context(), listingType, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
	}
}

// createListing handler
// @Summary Create a listing
// @Description Sellers create products, buyers create buyer requests.
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ListingRequest true "Listing"
// @Success 201 {object} model.ListingDetail
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /products [post]
// @Router /buyer-requests [post]
func (s *RestHandler) createListing(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utilsContext.GetUserID(r.Context())

		var req model.ListingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if err := validatorx.Validate(&req); err != nil {
			writeError(w, err)
			return
		}

		res, err := s.ListingApp.Create(r.Context(), userID, listingType, &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeCreated(w, res)
	}
}

// getListing handler
// @Summary Listing detail with its associated admins
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} model.ListingDetail
// @Failure 404 {object} Response
// @Router /products/{id} [get]
// @Router /buyer-requests/{id} [get]
func (s *RestHandler) getListing(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := s.ListingApp.Get(r.Context(), listingType, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
	}
}

// updateListing handler
// @Summary Replace a listing
// @Description local_admin_ids replaces the whole admin association set; an empty list clears it.
// @Tags Listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body model.ListingRequest true "Listing"
// @Success 200 {object} model.ListingDetail
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /products/{id} [put]
// @Router /buyer-requests/{id} [put]
func (s *RestHandler) updateListing(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utilsContext.GetUserID(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		var req model.ListingRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if err := validatorx.Validate(&req); err != nil {
			writeError(w, err)
			return
		}

		res, err := s.ListingApp.Update(r.Context(), userID, listingType, id, &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
	}
}

// deleteListing handler
// @Summary Deactivate a listing
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /products/{id} [delete]
// @Router /buyer-requests/{id} [delete]
func (s *RestHandler) deleteListing(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utilsContext.GetUserID(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := s.ListingApp.Delete(r.Context(), userID, listingType, id); err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, nil)
	}
}

// incrementViews handler
// @Summary Count one view
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /products/{id}/views [post]
// @Router /buyer-requests/{id}/views [post]
func (s *RestHandler) incrementViews(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := s.ListingApp.IncrementViews(r.Context(), listingType, id); err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, nil)
	}
}

// contactOwner handler
// @Summary Reveal the owner's contact details
// @Description Buyers contact product sellers; sellers contact buyer request owners. Counts one contact request.
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} model.ContactResponse
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /products/{id}/contact [post]
// @Router /buyer-requests/{id}/contact [post]
func (s *RestHandler) contactOwner(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utilsContext.GetUserID(r.Context())
		id, err := pathID(r)
		if err != nil {
			writeError(w, err)
			return
		}

		res, err := s.ListingApp.Contact(r.Context(), userID, listingType, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
	}
}

// myListings handler
// @Summary The caller's own listings, inactive included
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ListingListResponse
// @Router /me/products [get]
// @Router /me/buyer-requests [get]
func (s *RestHandler) myListings(listingType constant.ListingType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := utilsContext.GetUserID(r.Context())

		res, err := s.ListingApp.MyListings(r.Context(), userID, listingType, pageQuery(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, res)
	}
}

// Feed handler
// @Summary Mixed feed of products and buyer requests
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param city query string false "City"
// @Param state query string false "State"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius_km query number false "Radius in km"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} model.ListingListResponse
// @Router /feed [get]
func (s *RestHandler) Feed(w http.ResponseWriter, r *http.Request) {
	req, err := listingQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ListingApp.Feed(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
