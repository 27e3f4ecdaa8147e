package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/Veraticus/financer/internal/model"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	// Opening tags at the end of a line that are missing their closing bracket.
	unclosedTagRegex = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// Merchant name prefixes banks add to card and ACH descriptions.
var merchantPrefixes = []string{
	"POS PURCHASE ",
	"PURCHASE AUTHORIZED ON ",
	"DEBIT CARD PURCHASE ",
	"ACH DEBIT ",
	"CHECK CARD ",
	"VISA PURCHASE ",
	"MC PURCHASE ",
	"DEBIT PURCHASE ",
}

var genericDescriptions = map[string]bool{
	"DEBIT":           true,
	"CREDIT":          true,
	"PURCHASE":        true,
	"PAYMENT":         true,
	"POS TRANSACTION": true,
	"CARD PURCHASE":   true,
}

// Categories inferred from the OFX transaction type.
var typeCategories = map[string]string{
	"INT": "Interest",
	"FEE": "Bank Fees",
	"ATM": "Cash & ATM",
}

// ErrInvalidAmount is returned for a TRNAMT that is not a terminating decimal.
var ErrInvalidAmount = errors.New("invalid amount")

// OFXParser reads OFX/QFX statement downloads.
type OFXParser struct{}

// NewOFXParser creates an OFX parser.
func NewOFXParser() *OFXParser {
	return &OFXParser{}
}

// Parse reads bank and credit card statements from r. Amounts keep their
// OFX sign: debits are negative.
func (p *OFXParser) Parse(ctx context.Context, r io.Reader) ([]model.Transaction, error) {
	resp, err := p.decode(ctx, r)
	if err != nil {
		return nil, err
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		bankStmts++
		transactions = append(transactions, p.convertAll(stmt.BankTranList.Transactions, string(stmt.BankAcctFrom.AcctID))...)
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if !ok || stmt.BankTranList == nil {
			continue
		}
		ccStmts++
		transactions = append(transactions, p.convertAll(stmt.BankTranList.Transactions, string(stmt.CCAcctFrom.AcctID))...)
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

func (p *OFXParser) decode(ctx context.Context, r io.Reader) (*ofxgo.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}
	return resp, nil
}

// preprocessOFX fixes formatting issues common in bank downloads.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return unclosedTagRegex.ReplaceAllString(content, "$1>")
}

// convertAll converts list, dropping transactions whose amount cannot be read
// rather than importing them with a zero amount.
func (p *OFXParser) convertAll(list []ofxgo.Transaction, accountID string) []model.Transaction {
	out := make([]model.Transaction, 0, len(list))
	for _, ofxTx := range list {
		tx, err := p.convert(ofxTx, accountID)
		if err != nil {
			slog.Warn("Skipping OFX transaction", "fitid", ofxTx.FiTID, "account", accountID, "error", err)
			continue
		}
		out = append(out, tx)
	}
	return out
}

func (p *OFXParser) convert(ofxTx ofxgo.Transaction, accountID string) (model.Transaction, error) {
	amount, err := parseAmount(ofxTx.TrnAmt)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		ID:           string(ofxTx.FiTID),
		Date:         ofxTx.DtPosted.Time,
		Name:         string(ofxTx.Name),
		MerchantName: extractMerchantName(ofxTx),
		Amount:       amount,
		AccountID:    accountID,
		Type:         ofxTx.TrnType.String(),
		CheckNumber:  string(ofxTx.CheckNum),
		Category:     typeCategories[ofxTx.TrnType.String()],
	}
	tx.Hash = tx.GenerateHash()
	return tx, nil
}

// parseAmount converts an OFX amount exactly. ofxgo accepts fractions such as
// "1/3", which have no decimal form.
func parseAmount(amt ofxgo.Amount) (decimal.Decimal, error) {
	prec, exact := amt.FloatPrec()
	if !exact {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amt.RatString())
	}
	return decimal.NewFromString(amt.FloatString(prec))
}

// extractMerchantName prefers PAYEE, falls back to NAME and uses MEMO when
// NAME is too generic to identify anyone.
func extractMerchantName(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)
	if tx.Memo != "" && genericDescriptions[strings.ToUpper(name)] {
		name = string(tx.Memo)
	}
	name = strings.TrimSpace(name)

	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// "MM/DD " date stamps
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}
	return name
}
