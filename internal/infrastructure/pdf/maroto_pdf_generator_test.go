package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/pdf"
)

func TestRenderAvailabilityReport(t *testing.T) {
	r := pdf.NewMarotoReportRenderer()

	cases := map[string]oagis.AvailabilityReport{
		"completo": {
			ReferenceID:    "SYNC-1",
			LogicalID:      "EXTERNAL_WMS",
			ProductID:      "GZ-1000",
			FacilityID:     "WebStoreWarehouse",
			Declared:       "42",
			AvailableTotal: "40",
			Received:       true,
			GeneratedAt:    time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
		},
		"sin disponible ni referencia": {ProductID: "GZ-1000", Declared: "7"},
	}
	for name, report := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := r.RenderAvailabilityReport(context.Background(), report)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
		})
	}
}
