package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/light-bringer/freshmart/internal/app/inventory/domain"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_product"
	"github.com/light-bringer/freshmart/internal/app/inventory/usecases/add_to_order"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errUnclosedQuote  = errors.New("unclosed quote")
)

// parseAddProductArgs validates: add <name> <price> <quantity>
func parseAddProductArgs(args []string) (*add_product.Request, error) {
	if err := expectArgs(args, 3, "add <name> <price> <quantity>"); err != nil {
		return nil, err
	}
	name, err := parseName(args[0])
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseMoney(args[1])
	if err != nil {
		return nil, err
	}
	quantity, err := parseQuantity(args[2])
	if err != nil {
		return nil, err
	}
	return &add_product.Request{Name: name, Price: price, Quantity: quantity}, nil
}

// parseRemoveProductArgs validates: remove <name>
func parseRemoveProductArgs(args []string) (string, error) {
	if err := expectArgs(args, 1, "remove <name>"); err != nil {
		return "", err
	}
	return parseName(args[0])
}

// parseAddToOrderArgs validates: order <name> <quantity>
func parseAddToOrderArgs(args []string) (*add_to_order.Request, error) {
	if err := expectArgs(args, 2, "order <name> <quantity>"); err != nil {
		return nil, err
	}
	name, err := parseName(args[0])
	if err != nil {
		return nil, err
	}
	quantity, err := parseQuantity(args[1])
	if err != nil {
		return nil, err
	}
	return &add_to_order.Request{Name: name, Quantity: quantity}, nil
}

func expectArgs(args []string, n int, form string) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s", errUsage, form)
	}
	return nil
}

func parseName(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", domain.ErrEmptyName
	}
	return s, nil
}

func parseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	return q, nil
}

// splitArgs splits on whitespace; double quotes group words and may be empty.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		inToken bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inToken = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if inQuote {
		return nil, errUnclosedQuote
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}
