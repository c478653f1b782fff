// Package oagisxml lee BODs OAGIS 7.2.1 entrantes: sobre CNTROLAREA y líneas de DATAAREA.
// Los prefijos de espacio de nombres (N1:, N2:, n:) se ignoran en todas las búsquedas.
package oagisxml

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-oagis/internal/domain"
	"github.com/jhoicas/inventario-oagis/internal/domain/entity"
)

// Document BOD ya parseado. Es de solo lectura después de Parse.
type Document struct {
	root    *etree.Element
	control *etree.Element
	digest  string
}

// Parse lee el documento. Devuelve un error que envuelve domain.ErrParse si el XML está
// mal formado, no tiene exactamente un elemento raíz o le falta CNTROLAREA.
// Espacios, comentarios e instrucciones de proceso fuera de la raíz se aceptan.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: documento vacío", domain.ErrParse)
	}
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	roots := doc.ChildElements()
	if len(roots) != 1 {
		return nil, fmt.Errorf("%w: se esperaba un elemento raíz y hay %d", domain.ErrParse, len(roots))
	}
	root := roots[0]
	control := root.SelectElement("CNTROLAREA")
	if control == nil {
		return nil, fmt.Errorf("%w: falta CNTROLAREA en <%s>", domain.ErrParse, root.FullTag())
	}
	return &Document{root: root, control: control, digest: digest(data)}, nil
}

// RootTag nombre local del elemento raíz (ej. RECEIVE_DELIVERY_001).
func (d *Document) RootTag() string { return d.root.Tag }

// Digest SHA-256 hexadecimal del documento canonicalizado (C14N).
func (d *Document) Digest() string { return d.digest }

// Envelope extrae SENDER y BSR. Los elementos ausentes quedan como cadena vacía.
func (d *Document) Envelope() entity.InboundMessage {
	sender := d.control.SelectElement("SENDER")
	bsr := d.control.SelectElement("BSR")
	return entity.InboundMessage{
		LogicalID:    childText(sender, "LOGICALID"),
		Component:    childText(sender, "COMPONENT"),
		Task:         childText(sender, "TASK"),
		ReferenceID:  childText(sender, "REFERENCEID"),
		Confirmation: childText(sender, "CONFIRMATION"),
		AuthID:       childText(sender, "AUTHID"),
		BsrVerb:      childText(bsr, "VERB"),
		BsrNoun:      childText(bsr, "NOUN"),
		BsrRevision:  childText(bsr, "REVISION"),
		Outgoing:     false,
		Digest:       d.digest,
	}
}

// SyncInventoryLine línea implícita de DATAAREA/SYNC_INVENTORY/INVENTORY/QUANTITY.
// ok=false si el documento no trae QUANTITY.
func (d *Document) SyncInventoryLine() (line entity.ReceiptLine, ok bool) {
	qty := path(d.root, "DATAAREA", "SYNC_INVENTORY", "INVENTORY", "QUANTITY")
	if qty == nil {
		return entity.ReceiptLine{}, false
	}
	return entity.ReceiptLine{
		ProductID:  childText(qty, "ITEM"),
		Magnitude:  childText(qty, "VALUE"),
		Sign:       childText(qty, "SIGN"),
		UOM:        childText(qty, "UOM"),
		ItemStatus: childText(qty, "ITEMSTATUS"),
	}, true
}

// ReceiptLines líneas DATAAREA/ACKNOWLEDGE_DELIVERY/RECEIPTLN en orden de documento.
// refKind indica si DOCUMNTREF apunta a una orden o a una devolución.
func (d *Document) ReceiptLines(refKind string) []entity.ReceiptLine {
	ack := path(d.root, "DATAAREA", "ACKNOWLEDGE_DELIVERY")
	if ack == nil {
		return nil
	}
	elems := ack.SelectElements("RECEIPTLN")
	lines := make([]entity.ReceiptLine, 0, len(elems))
	for _, ln := range elems {
		qty := ln.SelectElement("QUANTITY")
		ref := ln.SelectElement("DOCUMNTREF")
		line := entity.ReceiptLine{
			ProductID:   childText(ln, "ITEM"),
			Magnitude:   childText(qty, "VALUE"),
			Sign:        childText(qty, "SIGN"),
			UOM:         childText(qty, "UOM"),
			Disposition: childText(ln, "DISPOSITN"),
			Ref: entity.DocumentRef{
				Kind:    refKind,
				ID:      childText(ref, "DOCUMENTID"),
				LineNum: childText(ref, "LINENUM"),
			},
		}
		for _, detail := range ln.SelectElements("INVDETAIL") {
			if sn := childText(detail, "SERIALNUM"); sn != "" {
				line.SerialNumbers = append(line.SerialNumbers, sn)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func path(e *etree.Element, tags ...string) *etree.Element {
	for _, tag := range tags {
		if e == nil {
			return nil
		}
		e = e.SelectElement(tag)
	}
	return e
}

func childText(e *etree.Element, tag string) string {
	if e == nil {
		return ""
	}
	c := e.SelectElement(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text())
}

// charsetReader soporta los prólogos ISO-8859-1 y windows-1252 que envían algunos ERP.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	case "utf-8", "utf8", "us-ascii", "":
		return input, nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", charset)
}

// digest calcula SHA-256 sobre la forma canónica; si C14N falla se usan los bytes crudos.
func digest(data []byte) string {
	canonical, err := canonicalize(data)
	if err != nil {
		canonical = data
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	dec.CharsetReader = charsetReader
	return c14n.Canonicalize(dec)
}
