package model

import "github.com/muhammadheryan/agri-market/constant"

// Paginate clamps page and perPage to sane values and returns the row offset.
func Paginate(page, perPage int) (int, int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	if perPage < 1 {
		perPage = constant.DefaultPerPage
	}
	if perPage > constant.MaxPerPage {
		perPage = constant.MaxPerPage
	}
	return page, perPage, (page - 1) * perPage
}
