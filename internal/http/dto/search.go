package dto

import (
	"net/url"
	"strings"
)

const searchTypeAll = "all"

// SearchRequest is a parsed metadata search. All selects the mixed result
// shape; every other type gets bare artists.
type SearchRequest struct {
	Query string
	All   bool
}

func ParseSearch(values url.Values) (SearchRequest, []ValidationError) {
	req := SearchRequest{
		Query: values.Get("query"),
		All:   strings.EqualFold(values.Get("type"), searchTypeAll),
	}
	return req, validateQuery(req.Query)
}
