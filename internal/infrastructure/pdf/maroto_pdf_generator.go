// Package pdf implementa a geração da nota de aquisição imprimível.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidora + NIF  │  N° Nota + Data             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ADQUIRENTE: Nome + NIF + morada + email                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Equipamento | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: TOTAL A PAGAR                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: estado da encomenda + método e estado de pagamento │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/megaar/comercial-api/internal/domain/entity"
)

// ── Identidade da distribuidora ───────────────────────────────────────────────

const (
	companyName = "MEGA-AR Climatização, Lda."
	companyNIF  = "PT509876543"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.OrderNotePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// OrderNote gera o PDF da nota de aquisição e devolve os seus bytes.
func (g *MarotoPDFGenerator) OrderNote(order *entity.SalesOrder, client *entity.Client, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Aquisição", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(detailRow(order, product))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order, product))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(statusFooterRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secções ───────────────────────────────────────────────────────────────────

// headerRow: distribuidora + NIF (esq) e n° da nota + data (dir).
func headerRow(order *entity.SalesOrder) core.Row {
	data := order.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIF: "+companyNIF, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE AQUISIÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: dados do adquirente.
func clientRow(client *entity.Client) core.Row {
	name, nif, address, email := "Cliente Desconhecido", "—", "—", "—"
	if client != nil {
		name = client.Name
		nif = nonEmpty(client.NIF, "—")
		address = nonEmpty(client.Address, "—")
		email = nonEmpty(client.Email, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ADQUIRENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("NIF: %s   |   Morada: %s   |   Email: %s", nif, address, email),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de detalhe.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Equipamento", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// detailRow: a linha única da nota.
func detailRow(order *entity.SalesOrder, product *entity.Product) core.Row {
	name := "Produto Desconhecido"
	unit, subtotal := decimal.Zero, decimal.Zero
	if product != nil {
		name = product.Name
		unit = product.Price
		subtotal = unit.Mul(decimal.NewFromInt(int64(order.Quantity)))
	}
	return row.New(7).Add(
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", order.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(6).Add(text.New(
			name,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			unit.StringFixed(2)+" €",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			subtotal.StringFixed(2)+" €",
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloco de total alinhado à direita.
func totalsRow(order *entity.SalesOrder, product *entity.Product) core.Row {
	total := decimal.Zero
	if product != nil {
		total = product.Price.Mul(decimal.NewFromInt(int64(order.Quantity)))
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL A PAGAR:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 1,
			}),
		),
		col.New(3).Add(
			text.New(total.StringFixed(2)+" €", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			}),
		),
	)
}

// statusFooterRow: estado da encomenda e do pagamento.
func statusFooterRow(order *entity.SalesOrder) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Pagamento: %s (%s)",
				statusLabel(order.Status),
				paymentLabel(order.PaymentMethod),
				paymentStatusLabel(order.PaymentStatus),
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func statusLabel(s string) string {
	switch s {
	case entity.OrderStatusSatisfied:
		return "Satisfeita"
	case entity.OrderStatusBackordered:
		return "Aguarda fornecedor"
	default:
		return "Pendente"
	}
}

func paymentLabel(m string) string {
	switch m {
	case entity.PaymentMethodFull:
		return "Pronto pagamento"
	case entity.PaymentMethodCash:
		return "Numerário"
	case entity.PaymentMethodTransfer:
		return "Transferência"
	case entity.PaymentMethodInstallments:
		return "Prestações"
	default:
		return m
	}
}

func paymentStatusLabel(s string) string {
	if s == entity.PaymentStatusPaid {
		return "liquidado"
	}
	return "por liquidar"
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
