package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"drogueria/m/domain"
	"drogueria/m/internal/store"
)

// Catalog columns, in order.
var header = []string{"nombre", "descripcion", "categoria", "proveedor", "precio_compra", "precio_venta", "stock"}

// LoadCatalog ingests a product catalog CSV in a single transaction and
// returns the number of products inserted. Categories and suppliers are
// matched by name and created when missing. Malformed rows are logged and
// skipped.
func LoadCatalog(ctx context.Context, st *store.Store, csvPath string, log zerolog.Logger) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open catalog %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	first, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read catalog header: %w", err)
	}
	if !validHeader(first) {
		return 0, fmt.Errorf("catalog header must be %s", strings.Join(header, ","))
	}

	rows := 0
	err = st.WithTx(ctx, func(tx *store.Tx) error {
		categories := map[string]int64{}
		suppliers := map[string]int64{}
		line := 1
		for {
			record, err := reader.Read()
			if err == io.EOF {
				return nil
			}
			line++
			if err != nil {
				var parseErr *csv.ParseError
				if !errors.As(err, &parseErr) {
					return fmt.Errorf("read catalog: %w", err)
				}
				log.Warn().Err(err).Int("line", line).Msg("unable to read catalog row")
				continue
			}
			p, categoryName, supplierName, err := parseRow(record)
			if err != nil {
				log.Warn().Err(err).Int("line", line).Msg("skipping catalog row")
				continue
			}
			if categoryName != "" {
				id, err := categoryID(ctx, tx, categories, categoryName)
				if err != nil {
					return err
				}
				p.CategoryID = &id
			}
			if supplierName != "" {
				id, err := supplierID(ctx, tx, suppliers, supplierName)
				if err != nil {
					return err
				}
				p.SupplierID = &id
			}
			if err := tx.Products.Create(ctx, &p); err != nil {
				return fmt.Errorf("insert product %q (line %d): %w", p.Name, line, err)
			}
			rows++
		}
	})
	if err != nil {
		return 0, err
	}
	log.Info().Int("rows", rows).Str("path", csvPath).Msg("seeded product catalog")
	return rows, nil
}

func validHeader(record []string) bool {
	if len(record) != len(header) {
		return false
	}
	for i, name := range record {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if !strings.EqualFold(strings.TrimSpace(name), header[i]) {
			return false
		}
	}
	return true
}

func parseRow(record []string) (domain.Product, string, string, error) {
	if len(record) < len(header) {
		return domain.Product{}, "", "", fmt.Errorf("expected %d fields, got %d", len(header), len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	if record[0] == "" {
		return domain.Product{}, "", "", errors.New("empty product name")
	}
	purchase, err := decimal.NewFromString(record[4])
	if err != nil {
		return domain.Product{}, "", "", fmt.Errorf("precio_compra: %w", err)
	}
	sale, err := decimal.NewFromString(record[5])
	if err != nil {
		return domain.Product{}, "", "", fmt.Errorf("precio_venta: %w", err)
	}
	var stock int64
	if record[6] != "" {
		if stock, err = strconv.ParseInt(record[6], 10, 64); err != nil {
			return domain.Product{}, "", "", fmt.Errorf("stock: %w", err)
		}
	}
	p := domain.Product{Name: record[0], PurchasePrice: purchase, SalePrice: sale, Stock: stock}
	if record[1] != "" {
		desc := record[1]
		p.Description = &desc
	}
	return p, record[2], record[3], nil
}

func categoryID(ctx context.Context, tx *store.Tx, cache map[string]int64, name string) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	c, err := tx.Categories.FindByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		c = domain.Category{Name: name}
		err = tx.Categories.Create(ctx, &c)
	}
	if err != nil {
		return 0, fmt.Errorf("category %q: %w", name, err)
	}
	cache[name] = c.ID
	return c.ID, nil
}

func supplierID(ctx context.Context, tx *store.Tx, cache map[string]int64, name string) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}
	s, err := tx.Suppliers.FindByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		s = domain.Supplier{Name: name}
		err = tx.Suppliers.Create(ctx, &s)
	}
	if err != nil {
		return 0, fmt.Errorf("supplier %q: %w", name, err)
	}
	cache[name] = s.ID
	return s.ID, nil
}
