package oagisxml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
	"github.com/jhoicas/inventario-oagis/internal/infrastructure/oagisxml"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParse_Envelope(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "sync_inventory.xml"))
	require.NoError(t, err)

	env := doc.Envelope()
	assert.Equal(t, "EXTERNAL_WMS", env.LogicalID)
	assert.Equal(t, "INVENTORY", env.Component)
	assert.Equal(t, "SYNC", env.Task)
	assert.Equal(t, "SYNC-0001", env.ReferenceID)
	assert.Equal(t, "1", env.Confirmation)
	assert.Equal(t, "WMS", env.AuthID)
	assert.Equal(t, "SYNC", env.BsrVerb)
	assert.Equal(t, "INVENTORY", env.BsrNoun)
	assert.Equal(t, "002", env.BsrRevision)
	assert.False(t, env.Outgoing)
	assert.Len(t, env.Digest, 64)
	assert.Equal(t, "SHOW_INVENTORY_001", doc.RootTag())
}

func TestParse_EnvelopeSinPrefijos(t *testing.T) {
	xml := `<ROOT><CNTROLAREA><SENDER><LOGICALID>L1</LOGICALID><REFERENCEID>R1</REFERENCEID></SENDER></CNTROLAREA></ROOT>`
	doc, err := oagisxml.Parse([]byte(xml))
	require.NoError(t, err)

	env := doc.Envelope()
	assert.Equal(t, "L1", env.LogicalID)
	assert.Equal(t, "R1", env.ReferenceID)
	// Elementos ausentes quedan vacíos.
	assert.Empty(t, env.Component)
	assert.Empty(t, env.BsrVerb)
}

func TestParse_ContenidoFueraDeLaRaiz(t *testing.T) {
	cases := map[string]string{
		"salto de línea final": "<ROOT><CNTROLAREA/></ROOT>\n",
		"espacios y CRLF":      "\r\n  <ROOT><CNTROLAREA/></ROOT>  \r\n",
		"comentario final":     "<ROOT><CNTROLAREA/></ROOT><!-- fin -->",
		"instrucción final":    "<ROOT><CNTROLAREA/></ROOT>\n<?proc x?>\n",
		"prólogo y comentario": "<?xml version=\"1.0\"?>\n<!-- WMS -->\n<ROOT><CNTROLAREA/></ROOT>\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := oagisxml.Parse([]byte(body))
			require.NoError(t, err)
			assert.Equal(t, "ROOT", doc.RootTag())
		})
	}
}

func TestParse_FixturesTerminanEnSaltoDeLinea(t *testing.T) {
	for _, name := range []string{"sync_inventory.xml", "po_acknowledge.xml", "rma_acknowledge.xml", "rma_latin1.xml"} {
		t.Run(name, func(t *testing.T) {
			data := readFixture(t, name)
			require.Equal(t, byte('\n'), data[len(data)-1])
			_, err := oagisxml.Parse(data)
			require.NoError(t, err)
		})
	}
}

func TestParse_Invalido(t *testing.T) {
	cases := map[string]string{
		"vacío":          "",
		"mal formado":    "<ROOT><CNTROLAREA></ROOT>",
		"texto plano":    "esto no es xml",
		"sin CNTROLAREA": "<ROOT><DATAAREA/></ROOT>",
		"sin cerrar":     "<ROOT><CNTROLAREA/>",
		"dos raíces":     "<ROOT><CNTROLAREA/></ROOT><ROOT/>",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := oagisxml.Parse([]byte(body))
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestSyncInventoryLine(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "sync_inventory.xml"))
	require.NoError(t, err)

	line, ok := doc.SyncInventoryLine()
	require.True(t, ok)
	assert.Equal(t, "GZ-1000", line.ProductID)
	assert.Equal(t, "42", line.Magnitude)
	assert.Equal(t, "+", line.Sign)
	assert.Equal(t, "EACH", line.UOM)
	assert.Equal(t, "INV_AVAILABLE", line.ItemStatus)
	assert.Empty(t, line.SerialNumbers)
}

func TestSyncInventoryLine_Ausente(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "po_acknowledge.xml"))
	require.NoError(t, err)
	_, ok := doc.SyncInventoryLine()
	assert.False(t, ok)
}

func TestReceiptLines_Orden(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "po_acknowledge.xml"))
	require.NoError(t, err)

	lines := doc.ReceiptLines(entity.DocumentRefOrder)
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Equal(t, "GZ-1000", first.ProductID)
	assert.Equal(t, "3", first.Magnitude)
	assert.Equal(t, "+", first.Sign)
	assert.Equal(t, "ReceivedTOAvailable", first.Disposition)
	assert.Equal(t, entity.DocumentRef{Kind: entity.DocumentRefOrder, ID: "WS10000", LineNum: "00001"}, first.Ref)
	// El SERIALNUM en blanco se descarta.
	assert.Equal(t, []string{"SN-A", "SN-B", "SN-C"}, first.SerialNumbers)

	second := lines[1]
	assert.Equal(t, "-", second.Sign)
	assert.Equal(t, "00002", second.Ref.LineNum)
	assert.Empty(t, second.SerialNumbers)
}

func TestReceiptLines_SinDataArea(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "sync_inventory.xml"))
	require.NoError(t, err)
	assert.Empty(t, doc.ReceiptLines(entity.DocumentRefOrder))
}

func TestParse_Latin1(t *testing.T) {
	doc, err := oagisxml.Parse(readFixture(t, "rma_latin1.xml"))
	require.NoError(t, err)

	lines := doc.ReceiptLines(entity.DocumentRefReturn)
	require.Len(t, lines, 1)
	assert.Equal(t, "CAFÉ-01", lines[0].ProductID)
	assert.Equal(t, entity.DocumentRefReturn, lines[0].Ref.Kind)
	assert.Equal(t, "RTN0001", lines[0].Ref.ID)
	assert.Equal(t, "RMA-ACK-0002", doc.Envelope().ReferenceID)
}

func TestDigest_Estable(t *testing.T) {
	a, err := oagisxml.Parse(readFixture(t, "rma_acknowledge.xml"))
	require.NoError(t, err)
	b, err := oagisxml.Parse(readFixture(t, "rma_acknowledge.xml"))
	require.NoError(t, err)
	c, err := oagisxml.Parse(readFixture(t, "po_acknowledge.xml"))
	require.NoError(t, err)

	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}
