package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

func TestErrorLog_ValorCero(t *testing.T) {
	var log entity.ErrorLog
	assert.True(t, log.Empty())
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.Records())
}

func TestErrorLog_ConservaOrden(t *testing.T) {
	var log entity.ErrorLog
	log.Add(entity.ReasonNumericFormat, "línea 1")
	log.Append(nil)
	log.Append(&entity.ErrorRecord{ReasonCode: entity.ReasonQuantitySerialMismatch, Description: "línea 2"})
	log.Addf(entity.ReasonReceiveInventoryService, "producto %s", "P1")

	recs := log.Records()
	require.Len(t, recs, 3)
	assert.False(t, log.Empty())
	assert.Equal(t, entity.ReasonNumericFormat, recs[0].ReasonCode)
	assert.Equal(t, entity.ReasonQuantitySerialMismatch, recs[1].ReasonCode)
	assert.Equal(t, "producto P1", recs[2].Description)
	assert.Equal(t, "[ReceiveInventoryServiceError] producto P1", recs[2].String())

	// Records devuelve una copia.
	recs[0].Description = "modificado"
	assert.Equal(t, "línea 1", log.Records()[0].Description)
}
