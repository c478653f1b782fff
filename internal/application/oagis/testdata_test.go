package oagis_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// readDocument lee los BODs de ejemplo del lector XML, tal cual llegan de un WMS.
func readDocument(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "infrastructure", "oagisxml", "testdata", name))
	require.NoError(t, err)
	return data
}

func serials(ops []entity.ReceiptOperation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.SerialNumber)
	}
	return out
}

func TestReceivePoAcknowledge_DocumentoWMS(t *testing.T) {
	f := newFixture(t, "system")
	f.expectAudit(nil)

	res := f.svc.ReceivePoAcknowledge(context.Background(), oagis.Request{Body: readDocument(t, "po_acknowledge.xml")})

	require.True(t, res.Success, "errores: %v", res.Errors)
	assert.Equal(t, oagis.StageFinalized, res.Stage)
	assert.Equal(t, "PO-ACK-0001", res.Envelope.ReferenceID)
	assert.Equal(t, 3, res.Operations, "la segunda línea es rechazada y el serial vacío se descarta")
	require.Len(t, f.receipts.ops, 3)
	assert.Equal(t, []string{"SN-A", "SN-B", "SN-C"}, serials(f.receipts.ops))
	for _, op := range f.receipts.ops {
		assert.Equal(t, entity.InventoryItemSerialized, op.InventoryItemType)
		assert.Equal(t, entity.InventoryStatusAvailable, op.StatusID)
		assert.Equal(t, "ReceivingDock", op.FacilityID)
		assert.Equal(t, "WS10000", op.Ref.ID)
	}

	info := f.auditInfo(t)
	assert.Equal(t, "WS10000", info.OrderID)
	assert.Equal(t, "RECEIVE", info.BsrVerb)
	assert.Len(t, info.Digest, 64)
}

func TestReceiveRmaAcknowledge_DocumentoWMS(t *testing.T) {
	cases := map[string]struct {
		file    string
		ref     string
		product string
	}{
		"utf-8":      {"rma_acknowledge.xml", "RMA-ACK-0001", "GZ-1000"},
		"iso-8859-1": {"rma_latin1.xml", "RMA-ACK-0002", "CAFÉ-01"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, "system")
			f.expectAudit(nil)

			res := f.svc.ReceiveRmaAcknowledge(context.Background(), oagis.Request{Body: readDocument(t, tc.file)})

			require.True(t, res.Success, "errores: %v", res.Errors)
			assert.Equal(t, tc.ref, res.Envelope.ReferenceID)
			assert.Equal(t, 1, res.Operations)
			require.Len(t, f.receipts.ops, 1)
			op := f.receipts.ops[0]
			assert.Equal(t, tc.product, op.ProductID)
			assert.Equal(t, entity.InventoryItemNonSerial, op.InventoryItemType)
			assert.True(t, op.QuantityAccepted.Equal(decimal.NewFromInt(2)))
			assert.Equal(t, "RTN-01", op.LocationSeqID)
			assert.Equal(t, entity.DocumentRef{Kind: entity.DocumentRefReturn, ID: "RTN0001", LineNum: "00001"}, op.Ref)
		})
	}
}

func TestSyncInventory_DocumentoWMS(t *testing.T) {
	f := newFixture(t, "admin")
	f.expectAudit(nil)
	f.availability.On("AvailableToPromise", mock.Anything, "GZ-1000").Return(decimal.NewFromInt(40), nil).Once()
	f.emailSettings.On("Get", mock.Anything, "9001", "PRDS_OAGIS_CONFIRM").Return(nil, nil).Once()

	res := f.svc.SyncInventory(context.Background(), oagis.Request{Body: readDocument(t, "sync_inventory.xml")})

	require.True(t, res.Success, "errores: %v", res.Errors)
	assert.Equal(t, "SYNC-0001", res.Envelope.ReferenceID)
	assert.Equal(t, 1, res.Operations)
	require.Len(t, f.receipts.ops, 1)
	op := f.receipts.ops[0]
	assert.Equal(t, "GZ-1000", op.ProductID)
	assert.True(t, op.QuantityAccepted.Equal(decimal.NewFromInt(42)))
	assert.Equal(t, "INV_AVAILABLE", op.StatusID)
	assert.Equal(t, "EACH", op.UOM)
	assert.Equal(t, "admin", op.UserLoginID)
	assert.Equal(t, entity.DocumentSyncInventory, f.auditInfo(t).DocumentKind)
}
