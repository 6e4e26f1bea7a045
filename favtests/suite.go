package favtests

import (
	"github.com/favorites-qa/favorites-contract-tests/framework"
	"github.com/favorites-qa/favorites-contract-tests/placeapi"
	"github.com/favorites-qa/favorites-contract-tests/spectable"
)

func RunTestSuite(
	harness *framework.TestHarness,
	params Params,
	filter framework.Filter,
	testLogger framework.TestLogger,
) (framework.Results, error) {
	if params.Table == nil {
		params.Table = spectable.DefaultTable(params.Catalog)
	}
	if err := params.Table.Validate(); err != nil {
		return framework.Results{}, err
	}
	if params.TokenExpiryWait <= 0 {
		params.TokenExpiryWait = DefaultTokenExpiryWait
	}
	client, err := placeapi.NewClient(placeapi.Config{
		BaseURL:        harness.ServiceBaseURL(),
		HTTPClient:     harness.HTTPClient(),
		RequestTimeout: params.RequestTimeout,
		Logger:         harness.Logger(),
	})
	if err != nil {
		return framework.Results{}, err
	}
	env := &environment{params: params, client: client}

	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Run("authentication", DoAuthenticationTests)
		t.Run("create", DoCreateTests)
		t.Run("validation", DoValidationTests)
		t.Run("idempotence", DoIdempotenceTests)
	}), nil
}
