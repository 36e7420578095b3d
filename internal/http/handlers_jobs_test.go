package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/opsarc/jobdeck/internal/data"
	"github.com/opsarc/jobdeck/internal/domain/model"
	"github.com/opsarc/jobdeck/internal/mocks"
	"github.com/opsarc/jobdeck/internal/service"
	"github.com/opsarc/jobdeck/internal/testutil"
)

type apiFixture struct {
	server   *httptest.Server
	store    *data.MemStore
	weather  *mocks.MockWeatherProvider
	country  *mocks.MockCountryProvider
	probe    *mocks.MockConnectivityProbe
	executor *service.Executor
}

// newAPIFixture wires the full stack behind a test server: real store,
// services, registry, executor, and scheduler over mocked providers.
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	weather := mocks.NewMockWeatherProvider(ctrl)
	country := mocks.NewMockCountryProvider(ctrl)
	probe := mocks.NewMockConnectivityProbe(ctrl)
	logger := testutil.DiscardLogger()

	store := data.NewMemStore(data.MemStoreOptions{Logger: logger})
	registry := service.NewRegistry(service.RegistryOptions{
		Weather: service.NewWeatherService(service.WeatherServiceOptions{
			Provider: weather,
			Probe:    probe,
			Logger:   logger,
		}),
		Countries: service.NewCountryService(service.CountryServiceOptions{
			Provider: country,
			Probe:    probe,
			Logger:   logger,
		}),
	})
	executor := service.NewExecutor(service.ExecutorOptions{
		Store:    store,
		Registry: registry,
		Logger:   logger,
	})
	scheduler := service.NewScheduler(service.SchedulerOptions{
		Store:    store,
		Registry: registry,
		Executor: executor,
		Logger:   logger,
	})

	srv := httptest.NewServer(NewRouter(RouterServices{
		Scheduler: scheduler,
		Store:     store,
		Logger:    logger,
	}))
	t.Cleanup(srv.Close)

	return &apiFixture{
		server:   srv,
		store:    store,
		weather:  weather,
		country:  country,
		probe:    probe,
		executor: executor,
	}
}

func (f *apiFixture) postJob(t *testing.T, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(f.server.URL+"/api/job", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (f *apiFixture) getJobs(t *testing.T, query string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.server.URL + "/api/jobs" + query)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func pastDateBody(name, jobType, tenantID, data string) string {
	scheduled := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
	return `{"name":"` + name + `","scheduledDate":"` + scheduled +
		`","type":"` + jobType + `","tenantId":"` + tenantID + `","data":` + data + `}`
}

func TestCreateJobReturns201AndCompletes(t *testing.T) {
	f := newAPIFixture(t)
	payload := json.RawMessage(`{"current": {"temperature_2m": 7.3}}`)
	f.probe.EXPECT().Check(gomock.Any()).Return(true).AnyTimes()
	f.weather.EXPECT().Forecast(gomock.Any(), 52.52, 13.405).Return(payload, nil)

	resp := f.postJob(t, pastDateBody("Berlin forecast", "weather", "tenant-a",
		`{"latitude": 52.52, "longitude": 13.405}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[model.Job](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Berlin forecast", created.Name)
	assert.Equal(t, model.JobTypeWeather, created.Type)
	assert.Equal(t, "tenant-a", created.TenantID)
	assert.Equal(t, model.JobStatusScheduled, created.Status)

	require.True(t, testutil.WaitFor(t, 2*time.Second, func() bool {
		listResp := f.getJobs(t, "?tenantId=tenant-a")
		jobs := decodeBody[[]model.Job](t, listResp)
		return len(jobs) == 1 && jobs[0].Status == model.JobStatusCompleted
	}), "job should complete with fetched data")
}

func TestCreateJobOfflineFallsBackToMock(t *testing.T) {
	f := newAPIFixture(t)
	f.probe.EXPECT().Check(gomock.Any()).Return(false).AnyTimes()

	resp := f.postJob(t, pastDateBody("Berlin forecast", "weather", "tenant-a",
		`{"latitude": 48.85, "longitude": 2.35}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[model.Job](t, resp)

	require.True(t, testutil.WaitFor(t, 2*time.Second, func() bool {
		listResp := f.getJobs(t, "?tenantId=tenant-a")
		jobs := decodeBody[[]model.Job](t, listResp)
		return len(jobs) == 1 && jobs[0].Status == model.JobStatusCompleted
	}))

	listResp := f.getJobs(t, "?tenantId=tenant-a")
	jobs := decodeBody[[]model.Job](t, listResp)
	require.Len(t, jobs, 1)
	assert.Equal(t, created.ID, jobs[0].ID)

	// The stored payload is the canned Berlin forecast, not live data.
	var decoded struct {
		Timezone string `json:"timezone"`
		Current  struct {
			Temperature float64 `json:"temperature_2m"`
		} `json:"current"`
	}
	require.NoError(t, json.Unmarshal(jobs[0].Data, &decoded))
	assert.Equal(t, "Europe/Berlin", decoded.Timezone)
	assert.InDelta(t, 2.1, decoded.Current.Temperature, 0.001)
}

func TestCreateJobMissingFields(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJob(t, `{"name": "incomplete"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t,
		"Missing required fields: name, scheduledDate, tenantId, type and data are required",
		body["error"])
	assert.NotContains(t, body, "details")
	assert.Equal(t, 0, f.store.Len())
}

func TestCreateJobInvalidType(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJob(t, pastDateBody("job", "astrology", "tenant-a", `{"sign": "libra"}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, `Invalid job type "astrology". Available types: weather, countries`, body["error"])
}

func TestCreateJobValidationDetails(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJob(t, pastDateBody("job", "weather", "tenant-a", `{"latitude": 91}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string             `json:"error"`
		Details []model.FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, []model.FieldError{
		{Field: "latitude", Message: "Latitude must be between -90 and 90 degrees"},
		{Field: "longitude", Message: "Longitude is required"},
	}, body.Details)
}

func TestCreateJobUnparseableScheduledDate(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJob(t,
		`{"name":"job","scheduledDate":"tomorrow","type":"weather","tenantId":"t","data":{"latitude":1,"longitude":1}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, `scheduledDate must be a valid ISO-8601 timestamp: "tomorrow"`, body["error"])
}

func TestCreateJobMalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.postJob(t, `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListJobsRequiresTenantID(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.getJobs(t, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Missing required parameter: tenantId is required", body["error"])
}

func TestListJobsTenantIsolationAndTypeFilter(t *testing.T) {
	f := newAPIFixture(t)
	f.probe.EXPECT().Check(gomock.Any()).Return(false).AnyTimes()

	future := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	submit := func(name, jobType, tenant, payload string) {
		body := `{"name":"` + name + `","scheduledDate":"` + future +
			`","type":"` + jobType + `","tenantId":"` + tenant + `","data":` + payload + `}`
		resp := f.postJob(t, body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	submit("w1", "weather", "tenant-a", `{"latitude": 1, "longitude": 2}`)
	submit("c1", "countries", "tenant-a", `{"countryName": "Germany"}`)
	submit("w2", "weather", "tenant-b", `{"latitude": 3, "longitude": 4}`)

	all := decodeBody[[]model.Job](t, f.getJobs(t, "?tenantId=tenant-a"))
	require.Len(t, all, 2)
	assert.Equal(t, "w1", all[0].Name)
	assert.Equal(t, "c1", all[1].Name)

	weatherOnly := decodeBody[[]model.Job](t, f.getJobs(t, "?tenantId=tenant-a&type=weather"))
	require.Len(t, weatherOnly, 1)
	assert.Equal(t, "w1", weatherOnly[0].Name)

	other := decodeBody[[]model.Job](t, f.getJobs(t, "?tenantId=tenant-b"))
	require.Len(t, other, 1)
	assert.Equal(t, "w2", other[0].Name)
}

func TestListJobsEmptyTenantReturnsEmptyArray(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.getJobs(t, "?tenantId=nobody")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw := decodeBody[json.RawMessage](t, resp)
	assert.JSONEq(t, "[]", string(raw))
}
