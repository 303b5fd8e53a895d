package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResult
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *Handlers) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll()
	if err != nil {
		h.logger.Error("could not fetch products", zap.Error(err))
		h.respond(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: msgInternalError})
		return
	}

	resp := ProductsResult{
		Success: true,
		Data:    make([]ProductResponse, len(products)),
		Count:   len(products),
	}
	for i, p := range products {
		resp.Data[i] = ProductResponse{
			Id:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
	}

	h.respond(w, http.StatusOK, resp)
}
