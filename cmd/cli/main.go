package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL   string
	timeout   time.Duration
	authToken string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ravenpay-cli",
		Short: "RavenPay ledger CLI tool",
		Long:  `A command line interface for interacting with the RavenPay ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Bearer token for authenticated endpoints")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var name, email, currency string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account",
		Run: func(cmd *cobra.Command, args []string) {
			createAccount(name, email, currency)
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Account holder name")
	createCmd.Flags().StringVar(&email, "email", "", "Account holder email")
	createCmd.Flags().StringVar(&currency, "currency", "", "Account currency code")
	createCmd.MarkFlagRequired("name")

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show the current balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency <account-id>",
		Short: "Reconcile the balance against the transaction ledger",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/consistency")
		},
	}
	consistencyCmd.Args = cobra.ExactArgs(1)

	accountCmd.AddCommand(createCmd, balanceCmd, consistencyCmd)
	rootCmd.AddCommand(accountCmd)

	// Movement commands
	var movement movementFlags

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Record a deposit",
		Run: func(cmd *cobra.Command, args []string) {
			postMovement("/api/v1/accounts/deposit", movement)
		},
	}
	movement.register(depositCmd)

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Record a withdrawal",
		Run: func(cmd *cobra.Command, args []string) {
			postMovement("/api/v1/accounts/withdraw", movement)
		},
	}
	movement.register(withdrawCmd)

	rootCmd.AddCommand(depositCmd, withdrawCmd)

	// History commands
	var limit, offset int
	transactionsCmd := &cobra.Command{
		Use:   "transactions <account-id>",
		Short: "List transactions for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON(fmt.Sprintf("/api/v1/accounts/%s/transactions?limit=%d&offset=%d", args[0], limit, offset))
		},
	}
	transactionsCmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	transactionsCmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	transactionCmd := &cobra.Command{
		Use:   "transaction <account-id> <transaction-id>",
		Short: "Show a single transaction",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/transactions/" + args[1])
		},
	}

	rootCmd.AddCommand(transactionsCmd, transactionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type movementFlags struct {
	accountID     string
	amount        string
	remarks       string
	bankCode      string
	bank          string
	accountNumber string
	accountName   string
	reference     string
	currency      string
}

func (f *movementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.accountID, "account", "", "Account id")
	cmd.Flags().StringVar(&f.amount, "amount", "", "Amount, e.g. 2500.00")
	cmd.Flags().StringVar(&f.remarks, "remarks", "", "Free-text remarks")
	cmd.Flags().StringVar(&f.bankCode, "bank-code", "", "Counterparty bank code")
	cmd.Flags().StringVar(&f.bank, "bank", "", "Counterparty bank name")
	cmd.Flags().StringVar(&f.accountNumber, "account-number", "", "Counterparty account number")
	cmd.Flags().StringVar(&f.accountName, "account-name", "", "Counterparty account holder name")
	cmd.Flags().StringVar(&f.reference, "reference", "", "External reference")
	cmd.Flags().StringVar(&f.currency, "currency", "", "Currency code")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("amount")
}

func createAccount(name, email, currency string) {
	body, _ := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"currency": currency,
	})

	doRequest(http.MethodPost, "/api/v1/accounts", body)
}

func postMovement(path string, f movementFlags) {
	body, _ := json.Marshal(map[string]string{
		"id":             f.accountID,
		"amount":         f.amount,
		"remarks":        f.remarks,
		"bank_code":      f.bankCode,
		"bank":           f.bank,
		"account_number": f.accountNumber,
		"account_name":   f.accountName,
		"reference":      f.reference,
		"currency":       f.currency,
	})

	doRequest(http.MethodPost, path, body)
}

func getJSON(path string) {
	doRequest(http.MethodGet, path, nil)
}

func doRequest(method, path string, body []byte) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}
