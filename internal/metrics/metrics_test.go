package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polybius/polybius-go/internal/model"
)

func TestObservePassword(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePassword(model.Password{
		{Fragment: "99", Label: "Birth Year", Kind: model.KindNumber},
		{Fragment: "Ap", Label: "Apples", Kind: model.KindText},
		{Fragment: "!", Label: model.SymbolLabel, Kind: model.KindSymbol},
		{Fragment: "14", Label: "Birth Day", Kind: model.KindNumber},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.passwords))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindNumber))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindText))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindSymbol))))
}

func TestObservePassword_TextNamedLikeOtherKinds(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePassword(model.Password{
		{Fragment: "Sym", Label: "Symbol", Kind: model.KindText},
		{Fragment: "Bir", Label: "Birth Year", Kind: model.KindText},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindText))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindNumber))))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.bits.WithLabelValues(string(model.KindSymbol))))
}

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(OutcomeOK)
	m.ObserveRequest(OutcomeOK)
	m.ObserveRequest(OutcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(OutcomeInvalid)))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveRequest(OutcomeOK)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `polybius_generate_requests_total{outcome="ok"} 1`))
}
