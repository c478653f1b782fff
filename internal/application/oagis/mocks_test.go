package oagis_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/inventario-oagis/internal/application/oagis"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type identityMock struct{ mock.Mock }

func (m *identityMock) GetByID(ctx context.Context, id string) (*entity.UserLogin, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.UserLogin)
	return u, args.Error(1)
}

type auditMock struct{ mock.Mock }

func (m *auditMock) Create(ctx context.Context, info *entity.OagisMessageInfo) error {
	return m.Called(ctx, info).Error(0)
}

type availabilityMock struct{ mock.Mock }

func (m *availabilityMock) AvailableToPromise(ctx context.Context, productID string) (decimal.Decimal, error) {
	args := m.Called(ctx, productID)
	d, _ := args.Get(0).(decimal.Decimal)
	return d, args.Error(1)
}

type contactsMock struct{ mock.Mock }

func (m *contactsMock) ListByFacility(ctx context.Context, facilityID, typeID string) ([]*entity.ContactMech, error) {
	args := m.Called(ctx, facilityID, typeID)
	list, _ := args.Get(0).([]*entity.ContactMech)
	return list, args.Error(1)
}

type emailSettingsMock struct{ mock.Mock }

func (m *emailSettingsMock) Get(ctx context.Context, storeID, emailType string) (*entity.EmailSetting, error) {
	args := m.Called(ctx, storeID, emailType)
	s, _ := args.Get(0).(*entity.EmailSetting)
	return s, args.Error(1)
}

type notifierMock struct{ mock.Mock }

func (m *notifierMock) Send(ctx context.Context, n oagis.Notification) error {
	return m.Called(ctx, n).Error(0)
}

// receiptRecorder guarda las operaciones en orden y devuelve el error programado por índice.
type receiptRecorder struct {
	ops  []entity.ReceiptOperation
	errs map[int]error
}

func (r *receiptRecorder) ReceiveInventory(_ context.Context, op entity.ReceiptOperation) (*entity.InventoryItem, error) {
	idx := len(r.ops)
	r.ops = append(r.ops, op)
	if err := r.errs[idx]; err != nil {
		return nil, err
	}
	return &entity.InventoryItem{ID: fmt.Sprintf("item-%d", idx), ProductID: op.ProductID}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores de documentos
// ──────────────────────────────────────────────────────────────────────────────

const envelope = `<N1:CNTROLAREA>
    <N1:BSR><N2:VERB>%s</N2:VERB><N2:NOUN>%s</N2:NOUN><N2:REVISION>001</N2:REVISION></N1:BSR>
    <N1:SENDER>
      <N2:LOGICALID>EXTERNAL_WMS</N2:LOGICALID>
      <N2:COMPONENT>INVENTORY</N2:COMPONENT>
      <N2:TASK>RECEIPT</N2:TASK>
      <N2:REFERENCEID>%s</N2:REFERENCEID>
      <N2:CONFIRMATION>1</N2:CONFIRMATION>
      <N2:AUTHID>WMS</N2:AUTHID>
    </N1:SENDER>
  </N1:CNTROLAREA>`

const namespaces = `xmlns:n="urn:oagis:bod" xmlns:N1="urn:oagis:segments" xmlns:N2="urn:oagis:fields"`

func ackXML(referenceID string, lines ...string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<n:RECEIVE_DELIVERY_001 ` + namespaces + `>
  ` + fmt.Sprintf(envelope, "RECEIVE", "DELIVERY", referenceID) + `
  <n:DATAAREA>
    <n:ACKNOWLEDGE_DELIVERY>` + strings.Join(lines, "") + `
    </n:ACKNOWLEDGE_DELIVERY>
  </n:DATAAREA>
</n:RECEIVE_DELIVERY_001>
`)
}

func receiptLn(value, sign, item, disposition, docID, lineNum string, serials ...string) string {
	var sb strings.Builder
	sb.WriteString(`
      <n:RECEIPTLN>
        <N1:QUANTITY><N2:VALUE>` + value + `</N2:VALUE><N2:SIGN>` + sign + `</N2:SIGN><N2:UOM>EACH</N2:UOM></N1:QUANTITY>
        <N2:ITEM>` + item + `</N2:ITEM>
        <N2:DISPOSITN>` + disposition + `</N2:DISPOSITN>
        <N1:DOCUMNTREF><N2:DOCUMENTID>` + docID + `</N2:DOCUMENTID><N2:LINENUM>` + lineNum + `</N2:LINENUM></N1:DOCUMNTREF>`)
	for _, sn := range serials {
		sb.WriteString(`
        <n:INVDETAIL><N2:SERIALNUM>` + sn + `</N2:SERIALNUM></n:INVDETAIL>`)
	}
	sb.WriteString(`
      </n:RECEIPTLN>`)
	return sb.String()
}

func syncXML(referenceID, value, sign, item, status string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<n:SHOW_INVENTORY_001 ` + namespaces + `>
  ` + fmt.Sprintf(envelope, "SYNC", "INVENTORY", referenceID) + `
  <n:DATAAREA>
    <n:SYNC_INVENTORY>
      <n:INVENTORY>
        <N1:QUANTITY>
          <N2:VALUE>` + value + `</N2:VALUE>
          <N2:SIGN>` + sign + `</N2:SIGN>
          <N2:UOM>EACH</N2:UOM>
          <N2:ITEM>` + item + `</N2:ITEM>
          <N2:ITEMSTATUS>` + status + `</N2:ITEMSTATUS>
        </N1:QUANTITY>
      </n:INVENTORY>
    </n:SYNC_INVENTORY>
  </n:DATAAREA>
</n:SHOW_INVENTORY_001>
`)
}
