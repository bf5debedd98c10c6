package insights

import (
	"encoding/json"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/analytics"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
)

// BuildPrompt renders the fixed analysis request around a snapshot of the
// active collection. The snapshot is embedded verbatim as JSON; the
// headline figures are precomputed so the narrative has reliable numbers
// to anchor on.
func BuildPrompt(products []catalog.Product) string {
	data, err := json.Marshal(products)
	if err != nil {
		// Products are plain values; marshalling them cannot fail in
		// practice, but an empty list keeps the prompt well-formed.
		data = []byte("[]")
	}
	summary := analytics.Compute(products)
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.WriteString("Analyze the following inventory data for 'BOKU NO SHOP'.\n")
	b.WriteString("Data: ")
	b.Write(data)
	b.WriteString("\n\n")
	p.Fprintf(&b, "Headline figures: stock value %.2f, realized profit %.2f, projected cash %.2f across %d products.\n\n",
		summary.ActiveStockValue, summary.RealizedProfit, summary.ProjectedCash, len(products))
	b.WriteString("Please provide:\n")
	b.WriteString("1. A summary of current financial health.\n")
	b.WriteString("2. Which items are performing best.\n")
	b.WriteString("3. Restock recommendations based on stock levels and status.\n")
	b.WriteString("4. A motivational tip for the business owner.\n\n")
	b.WriteString("Format the response in professional markdown.\n")
	return b.String()
}
