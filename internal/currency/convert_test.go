package currency

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

func TestConvertIdentity(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	amount := decimal.NewFromFloat(42.5)

	res := Convert(amount, id, id, RateTable{})
	if !res.Value.Equal(amount) {
		t.Fatalf("same-currency conversion must return input, got %s", res.Value)
	}
	if !res.Converted {
		t.Fatal("same-currency conversion counts as converted")
	}
}

func TestConvertZeroAmount(t *testing.T) {
	t.Parallel()

	res := Convert(decimal.Zero, uuid.New(), uuid.New(), RateTable{})
	if !res.Value.IsZero() || !res.Converted {
		t.Fatalf("zero amount should pass through as converted, got %+v", res)
	}
}

func TestConvertDirectRate(t *testing.T) {
	t.Parallel()

	from, to := uuid.New(), uuid.New()
	table := RateTable{Key(from, to): decimal.NewFromFloat(1.25)}

	res := Convert(decimal.NewFromInt(100), from, to, table)
	if !res.Value.Equal(decimal.NewFromInt(125)) {
		t.Fatalf("expected 125, got %s", res.Value)
	}
	if !res.Converted {
		t.Fatal("direct rate conversion must be flagged converted")
	}
}

func TestConvertInverseRate(t *testing.T) {
	t.Parallel()

	from, to := uuid.New(), uuid.New()
	// only A→B exists; converting B→A must divide.
	table := RateTable{Key(from, to): decimal.NewFromInt(4)}

	res := Convert(decimal.NewFromInt(100), to, from, table)
	if !res.Value.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25, got %s", res.Value)
	}
	if !res.Converted {
		t.Fatal("inverse rate conversion must be flagged converted")
	}
}

func TestConvertMissingRatePassesThrough(t *testing.T) {
	t.Parallel()

	amount := decimal.NewFromFloat(99.99)
	res := Convert(amount, uuid.New(), uuid.New(), RateTable{})
	if !res.Value.Equal(amount) {
		t.Fatalf("missing rate must pass the amount through, got %s", res.Value)
	}
	if res.Converted {
		t.Fatal("missing rate must be flagged unconverted")
	}
}

func TestConvertNilCurrency(t *testing.T) {
	t.Parallel()

	amount := decimal.NewFromInt(10)
	res := Convert(amount, uuid.Nil, uuid.New(), RateTable{})
	if !res.Value.Equal(amount) || res.Converted {
		t.Fatalf("nil source currency should pass through unconverted, got %+v", res)
	}
}

func TestNewRateTableDropsNonPositiveRates(t *testing.T) {
	t.Parallel()

	from, to := uuid.New(), uuid.New()
	table := NewRateTable([]models.ExchangeRate{
		{FromCurrencyID: from, ToCurrencyID: to, Rate: decimal.Zero},
		{FromCurrencyID: to, ToCurrencyID: from, Rate: decimal.NewFromFloat(0.8)},
	})
	if len(table) != 1 {
		t.Fatalf("expected single valid rate, got %d", len(table))
	}
	if _, ok := table[Key(to, from)]; !ok {
		t.Fatal("positive rate should be kept")
	}
}
