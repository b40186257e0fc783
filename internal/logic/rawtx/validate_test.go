package rawtx

import (
	"encoding/json"
	"strings"
	"testing"
)

func validTx() *RawTransaction {
	return &RawTransaction{
		Digest: "8kDe9wrE5FFVZ2vWpQbQcqgzJKXvEJkkXpQbQcqgzJKX",
		Transaction: &Transaction{
			Data: &TransactionData{Sender: "0xaaa"},
		},
		Effects: &Effects{
			Status:  Status{Status: "success"},
			GasUsed: &GasUsed{ComputationCost: "1000"},
		},
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(validTx()); err != nil {
		t.Fatalf("valid tx rejected: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(tx *RawTransaction)
		wantErr string
	}{
		{"missing digest", func(tx *RawTransaction) { tx.Digest = "" }, "digest"},
		{"nil transaction", func(tx *RawTransaction) { tx.Transaction = nil }, "transaction data"},
		{"nil data", func(tx *RawTransaction) { tx.Transaction.Data = nil }, "transaction data"},
		{"missing sender", func(tx *RawTransaction) { tx.Transaction.Data.Sender = "" }, "sender"},
		{"nil effects", func(tx *RawTransaction) { tx.Effects = nil }, "effects"},
		{"nil gas used", func(tx *RawTransaction) { tx.Effects.GasUsed = nil }, "gas usage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTx()
			tc.mutate(tx)
			err := Validate(tx)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want substring %q", err, tc.wantErr)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("nil transaction must be rejected")
	}
}

func TestSuccess(t *testing.T) {
	tx := validTx()
	if !tx.Success() {
		t.Error("status success should report true")
	}
	tx.Effects.Status.Status = "failure"
	if tx.Success() {
		t.Error("status failure should report false")
	}
	tx.Effects = nil
	if tx.Success() {
		t.Error("missing effects should report false")
	}
}

func TestOwnerUnmarshal(t *testing.T) {
	// 对象形式的两种 owner
	var o Owner
	if err := json.Unmarshal([]byte(`{"AddressOwner":"0xaaa"}`), &o); err != nil {
		t.Fatal(err)
	}
	if o.Address() != "0xaaa" {
		t.Errorf("address = %q", o.Address())
	}

	o = Owner{}
	if err := json.Unmarshal([]byte(`{"ObjectOwner":"0xbbb"}`), &o); err != nil {
		t.Fatal(err)
	}
	if o.Address() != "0xbbb" {
		t.Errorf("address = %q", o.Address())
	}

	// 字面量 "Immutable" 不报错，两个字段保持为空
	o = Owner{}
	if err := json.Unmarshal([]byte(`"Immutable"`), &o); err != nil {
		t.Fatal(err)
	}
	if o.Address() != "" {
		t.Errorf("address = %q, want empty", o.Address())
	}

	// Shared 对象没有地址
	o = Owner{}
	if err := json.Unmarshal([]byte(`{"Shared":{"initial_shared_version":42}}`), &o); err != nil {
		t.Fatal(err)
	}
	if o.Address() != "" {
		t.Errorf("address = %q, want empty", o.Address())
	}

	var nilOwner *Owner
	if nilOwner.Address() != "" {
		t.Error("nil owner must have empty address")
	}
}
