package main

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageDataSelector matches the script element Next.js embeds its bootstrap
// JSON into on every rendered creator page.
const pageDataSelector = "#__NEXT_DATA__"

// CreatorProfile is the user record embedded in the frontend page data,
// also returned (wrapped in a data envelope) by the backend user endpoint.
type CreatorProfile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Description    string `json:"description"`
	Avatar         string `json:"avatar"`
	TotalDonations int64  `json:"total_donations"`
	Currency       string `json:"currency"`
}

// pageData mirrors the fixed props.pageProps.data nesting of the embedded
// bootstrap JSON. Only the user record is navigated; everything else in the
// payload is ignored.
type pageData struct {
	Props struct {
		PageProps struct {
			Data *CreatorProfile `json:"data"`
		} `json:"pageProps"`
	} `json:"props"`
}

// ExtractPageData locates the embedded page data script in an HTML document
// and returns the creator record it carries.
//
// An absent script element yields ErrPageDataNotFound, which callers treat as
// "user not found". A present element with invalid JSON yields a
// MalformedDataError. A missing intermediate key is not an error: the result
// is an empty record with every field blank.
func ExtractPageData(html string) (*CreatorProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &MalformedDataError{Err: err}
	}

	sel := doc.Find(pageDataSelector)
	if sel.Length() == 0 {
		return nil, ErrPageDataNotFound
	}

	var data pageData
	if err := json.Unmarshal([]byte(sel.First().Text()), &data); err != nil {
		return nil, &MalformedDataError{Err: err}
	}

	profile := data.Props.PageProps.Data
	if profile == nil {
		return &CreatorProfile{}, nil
	}
	return profile, nil
}
