package analytics

import (
	"maps"
	"slices"
	"strings"
)

// Canonical column names. Every supported export locale is relabeled into these.
const (
	ColDate       = "Date"
	ColTime       = "Time"
	ColProduct    = "Product"
	ColISIN       = "ISIN"
	ColQuantity   = "Quantity"
	ColPrice      = "Price"
	ColLocalValue = "Local Value"
	ColValue      = "Value"
	ColTotal      = "Total"
)

// NumericColumns are the canonical columns holding locale formatted numbers.
var NumericColumns = []string{ColQuantity, ColPrice, ColLocalValue, ColValue, ColTotal}

// ColumnMap maps a source column label to its canonical name.
//
// Labels are matched exactly, after trimming surrounding spaces. There is no fuzzy matching:
// a label absent from the map is kept as is.
type ColumnMap map[string]string

// standardColumns lists, per export language, the labels brokers use for the canonical columns.
var standardColumns = map[string]ColumnMap{
	"en": {
		"Date":        ColDate,
		"Time":        ColTime,
		"Product":     ColProduct,
		"ISIN":        ColISIN,
		"Quantity":    ColQuantity,
		"Price":       ColPrice,
		"Local value": ColLocalValue,
		"Local Value": ColLocalValue,
		"Value":       ColValue,
		"Total":       ColTotal,
	},
	"nl": {
		"Datum":         ColDate,
		"Tijd":          ColTime,
		"Product":       ColProduct,
		"ISIN":          ColISIN,
		"Aantal":        ColQuantity,
		"Koers":         ColPrice,
		"Lokale waarde": ColLocalValue,
		"Waarde":        ColValue,
		"Totaal":        ColTotal,
	},
	"de": {
		"Datum":                ColDate,
		"Uhrzeit":              ColTime,
		"Produkt":              ColProduct,
		"ISIN":                 ColISIN,
		"Anzahl":               ColQuantity,
		"Kurs":                 ColPrice,
		"Wert in Lokalwährung": ColLocalValue,
		"Wert":                 ColValue,
		"Gesamt":               ColTotal,
	},
	"fr": {
		"Date":                  ColDate,
		"Heure":                 ColTime,
		"Produit":               ColProduct,
		"Code ISIN":             ColISIN,
		"Quantité":              ColQuantity,
		"Cours":                 ColPrice,
		"Montant devise locale": ColLocalValue,
		"Montant":               ColValue,
		"Total":                 ColTotal,
	},
	"pt": {
		"Data":        ColDate,
		"Hora":        ColTime,
		"Produto":     ColProduct,
		"ISIN":        ColISIN,
		"Quantidade":  ColQuantity,
		"Preços":      ColPrice,
		"Valor local": ColLocalValue,
		"Valor":       ColValue,
		"Total":       ColTotal,
	},
	"es": {
		"Fecha":       ColDate,
		"Hora":        ColTime,
		"Producto":    ColProduct,
		"ISIN":        ColISIN,
		"Número":      ColQuantity,
		"Precio":      ColPrice,
		"Valor local": ColLocalValue,
		"Valor":       ColValue,
		"Total":       ColTotal,
	},
	"it": {
		"Data":          ColDate,
		"Ora":           ColTime,
		"Prodotto":      ColProduct,
		"ISIN":          ColISIN,
		"Quantità":      ColQuantity,
		"Prezzo":        ColPrice,
		"Valore locale": ColLocalValue,
		"Valore":        ColValue,
		"Totale":        ColTotal,
	},
}

// Locales returns the supported export languages, sorted.
func Locales() []string {
	return slices.Sorted(maps.Keys(standardColumns))
}

// LocaleColumns returns the column map of a single export language, or nil if unknown.
func LocaleColumns(locale string) ColumnMap {
	return maps.Clone(standardColumns[locale])
}

// StandardColumns returns the union of all the supported locales' column maps.
func StandardColumns() ColumnMap {
	m := make(ColumnMap)
	for _, locale := range Locales() {
		maps.Copy(m, standardColumns[locale])
	}
	return m
}

// Canonical returns the canonical name for label, or label itself if it is not mapped.
func (m ColumnMap) Canonical(label string) string {
	if c, ok := m[strings.TrimSpace(label)]; ok {
		return c
	}
	return label
}
