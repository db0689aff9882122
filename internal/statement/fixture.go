package statement

// Fallback returns the bundled statement used whenever the live source is
// unavailable or unparseable. It is a fully-formed payload covering the
// 2025 Q3 period with every product represented, ordered
// most-recent-first like normalizer output.
func Fallback() Payload {
	txs := []Transaction{
		{
			ID:          "txn-2025-0918",
			Date:        "2025-09-18",
			Description: "Pagamento fornecedor Neotech",
			Category:    "Fornecedores",
			Amount:      7420.50,
			Direction:   DirectionDebit,
			Status:      StatusCompleted,
			Responsible: "Ana Lima",
			ProductType: ProductSuppliers,
			ProductName: "Fornecedores",
		},
		{
			ID:          "txn-2025-0915",
			Date:        "2025-09-15",
			Description: "Recebimento cliente Aurora LTDA",
			Category:    "Vendas",
			Amount:      18900,
			Direction:   DirectionCredit,
			Status:      StatusCompleted,
			Responsible: "Carlos Souza",
			ProductType: ProductBusinessAccount,
			ProductName: "Conta empresarial",
		},
		{
			ID:          "txn-2025-0910",
			Date:        "2025-09-10",
			Description: "Reembolso de despesas de viagem",
			Category:    "Viagens",
			Amount:      982.35,
			Direction:   DirectionDebit,
			Status:      StatusPending,
			Responsible: "Marina Alves",
			ProductType: ProductExpenseManagement,
			ProductName: "Gestão de despesas",
		},
		{
			ID:          "txn-2025-0901",
			Date:        "2025-09-01",
			Description: "Mensalidade software contábil",
			Category:    "Assinaturas",
			Amount:      459.90,
			Direction:   DirectionDebit,
			Status:      StatusScheduled,
			ProductType: ProductExpenseManagement,
			ProductName: "Gestão de despesas",
		},
		{
			ID:          "txn-2025-0822",
			Date:        "2025-08-22",
			Description: "Recebimento cliente Horizonte SA",
			Category:    "Vendas",
			Amount:      25400,
			Direction:   DirectionCredit,
			Status:      StatusCompleted,
			Responsible: "Carlos Souza",
			ProductType: ProductBusinessAccount,
			ProductName: "Conta empresarial",
		},
		{
			ID:          "txn-2025-0819",
			Date:        "2025-08-19",
			Description: "Pagamento fornecedor Grão Fino",
			Category:    "Fornecedores",
			Amount:      3150.75,
			Direction:   DirectionDebit,
			Status:      StatusCompleted,
			Responsible: "Ana Lima",
			ProductType: ProductSuppliers,
			ProductName: "Fornecedores",
		},
		{
			ID:          "txn-2025-0812",
			Date:        "2025-08-12",
			Description: "Cartão corporativo - almoço equipe",
			Category:    "Alimentação",
			Amount:      387.20,
			Direction:   DirectionDebit,
			Status:      StatusCompleted,
			Responsible: "Marina Alves",
			ProductType: ProductExpenseManagement,
			ProductName: "Gestão de despesas",
		},
		{
			ID:          "txn-2025-0805",
			Date:        "2025-08-05",
			Description: "Transferência recebida - consultoria",
			Category:    "Serviços",
			Amount:      8700,
			Direction:   DirectionCredit,
			Status:      StatusCompleted,
			ProductType: ProductBusinessAccount,
			ProductName: "Conta empresarial",
		},
		{
			ID:          "txn-2025-0728",
			Date:        "2025-07-28",
			Description: "Pagamento fornecedor Embalagens Rio",
			Category:    "Fornecedores",
			Amount:      5240,
			Direction:   DirectionDebit,
			Status:      StatusCompleted,
			Responsible: "Ana Lima",
			ProductType: ProductSuppliers,
			ProductName: "Fornecedores",
		},
		{
			ID:          "txn-2025-0721",
			Date:        "2025-07-21",
			Description: "Recebimento cliente Maré Alta ME",
			Category:    "Vendas",
			Amount:      12300,
			Direction:   DirectionCredit,
			Status:      StatusCompleted,
			Responsible: "Carlos Souza",
			ProductType: ProductBusinessAccount,
			ProductName: "Conta empresarial",
		},
		{
			ID:          "txn-2025-0714",
			Date:        "2025-07-14",
			Description: "Assinatura ferramenta de RH",
			Category:    "Assinaturas",
			Amount:      289.90,
			Direction:   DirectionDebit,
			Status:      StatusCompleted,
			ProductType: ProductExpenseManagement,
			ProductName: "Gestão de despesas",
		},
		{
			ID:          "txn-2025-0703",
			Date:        "2025-07-03",
			Description: "Aporte inicial do período",
			Category:    "Aportes",
			Amount:      30000,
			Direction:   DirectionCredit,
			Status:      StatusCompleted,
			ProductType: ProductBusinessAccount,
			ProductName: "Conta empresarial",
		},
	}

	return Payload{
		Period: Period{
			StartDate: "2025-07-01",
			EndDate:   "2025-09-30",
		},
		Transactions:   txs,
		OpeningBalance: 52300.40,
		ClosingBalance: 139674.40,
		Currency:       "BRL",
		TotalCount:     len(txs),
		Page:           1,
		Limit:          DefaultLimit,
		TotalPages:     2,
		NextPage:       2,
		LastUpdatedAt:  "2025-09-19T08:30:00Z",
	}
}
