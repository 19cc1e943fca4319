package v1_test

import (
	"fmt"
	"net/http"
	"sort"

	v1 "github.com/moneyflow-app/backend/internal/controllers/v1"
	"github.com/moneyflow-app/backend/internal/models"
	"github.com/moneyflow-app/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := suite.request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, len(models.DefaultCategories))

	names := make([]string, 0, len(response.Data))
	for _, category := range response.Data {
		names = append(names, category.Name)
	}
	suite.Assert().True(sort.StringsAreSorted(names), "Categories are not sorted by name: %v", names)

	first := response.Data[0]
	suite.Assert().Equal("Alimentação", first.Name)
	suite.Assert().Equal("Utensils", first.WebDeviceIcon)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", first.ID), first.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?category=%s", first.ID), first.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{
		Name:          "  Pets ",
		WebDeviceIcon: "PawPrint",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Pets", response.Data.Name)
	suite.Assert().Equal("PawPrint", response.Data.WebDeviceIcon)

	// Categories are shared between users
	other := suite.createTestUser(suite.T(), v1.UserCreate{})
	r = suite.requestAs(suite.T(), other.Data.Token, http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, len(models.DefaultCategories)+1)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicate() {
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "Lazer"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the category name must be unique", *response.Error)
}

func (suite *TestSuiteStandard) TestCategoriesCreateInvalid() {
	for _, body := range []any{"", v1.CategoryEditable{}, `{"name": 42}`} {
		r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", body)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	// Whitespace only passes binding, but is rejected by the model
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/categories", v1.CategoryEditable{Name: "   "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoriesUnauthenticated() {
	r := test.Request(suite.T(), suite.co, http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	suite.CloseDB()

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
