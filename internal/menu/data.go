package menu

import "cardapio/internal/models"

// DefaultCatalog is the bundled menu shown while the persisted settings
// still carry an empty catalog, so a fresh install never renders a blank
// storefront.
func DefaultCatalog() ([]models.Category, []models.MenuItem) {
	categories := []models.Category{
		{ID: "1", Name: "Entradas", Order: 1},
		{ID: "2", Name: "Pratos Principais", Order: 2},
		{ID: "3", Name: "Sobremesas", Order: 3},
		{ID: "4", Name: "Bebidas", Order: 4},
	}

	items := []models.MenuItem{
		{ID: "1", Name: "Pão de Alho", Description: "Pão italiano torrado com manteiga de alho e ervas finas", Price: 12.90, CategoryID: "1", IsAvailable: true, Order: 1},
		{ID: "2", Name: "Salada Caesar", Description: "Alface romana, croutons, parmesão e molho caesar", Price: 24.90, CategoryID: "1", IsAvailable: true, Order: 2},
		{ID: "3", Name: "Filé ao Molho Madeira", Description: "Filé mignon grelhado ao molho madeira com arroz e batata", Price: 49.90, CategoryID: "2", IsAvailable: true, Order: 1},
		{ID: "4", Name: "Risoto de Cogumelos", Description: "Risoto cremoso com mix de cogumelos e parmesão", Price: 42.90, CategoryID: "2", IsAvailable: true, Order: 2},
		{ID: "5", Name: "Pudim de Leite", Description: "Pudim de leite condensado com calda de caramelo", Price: 18.90, CategoryID: "3", IsAvailable: true, Order: 1},
		{ID: "6", Name: "Mousse de Chocolate", Description: "Mousse de chocolate belga com raspas de chocolate", Price: 19.90, CategoryID: "3", IsAvailable: true, Order: 2},
		{ID: "7", Name: "Água Mineral", Description: "Garrafa 500ml", Price: 5.90, CategoryID: "4", IsAvailable: true, Order: 1},
		{ID: "8", Name: "Refrigerante", Description: "Lata 350ml", Price: 6.90, CategoryID: "4", IsAvailable: true, Order: 2},
		{ID: "file-parmegiana", Name: "Filé à Parmegiana", Description: "Filé empanado coberto com molho de tomate e queijo, acompanhado de arroz e batata frita.", Price: 39.90, CategoryID: "2", IsAvailable: true, Order: 3},
		{ID: "strogonoff-frango", Name: "Strogonoff de Frango", Description: "Clássico strogonoff de frango com arroz branco e batata palha.", Price: 32.90, CategoryID: "2", IsAvailable: true, Order: 4},
		{ID: "lasanha-bolonhesa", Name: "Lasanha à Bolonhesa", Description: "Lasanha recheada com carne moída, molho de tomate e queijo gratinado.", Price: 36.90, CategoryID: "2", IsAvailable: true, Order: 5},
		{ID: "refrigerante-lata", Name: "Refrigerante Lata", Description: "Escolha entre Coca-Cola, Guaraná, Fanta e outros sabores.", Price: 6.00, CategoryID: "4", IsAvailable: true, Order: 3},
		{ID: "suco-natural", Name: "Suco Natural", Description: "Suco natural de laranja, limão ou abacaxi, feito na hora.", Price: 8.00, CategoryID: "4", IsAvailable: true, Order: 4},
		{ID: "agua-mineral", Name: "Água Mineral", Description: "Água mineral com ou sem gás.", Price: 4.00, CategoryID: "4", IsAvailable: true, Order: 5},
		{ID: "pudim-leite", Name: "Pudim de Leite", Description: "Tradicional pudim de leite condensado com calda de caramelo.", Price: 12.00, CategoryID: "3", IsAvailable: true, Order: 2},
		{ID: "mousse-chocolate", Name: "Mousse de Chocolate", Description: "Mousse de chocolate cremoso, leve e aerado.", Price: 10.00, CategoryID: "3", IsAvailable: true, Order: 3},
		{ID: "torta-limao", Name: "Torta de Limão", Description: "Torta de limão com base crocante e cobertura de merengue.", Price: 11.00, CategoryID: "3", IsAvailable: true, Order: 4},
		{ID: "9", Name: "Bruschetta Italiana", Description: "Pão italiano com tomate, manjericão fresco e azeite de oliva.", Price: 16.90, CategoryID: "1", IsAvailable: true, Order: 3},
		{ID: "10", Name: "Peixe Grelhado", Description: "Filé de peixe grelhado com legumes salteados e arroz.", Price: 44.90, CategoryID: "2", IsAvailable: true, Order: 6},
		{ID: "11", Name: "Cheesecake de Frutas Vermelhas", Description: "Cheesecake cremoso com calda de frutas vermelhas.", Price: 21.90, CategoryID: "3", IsAvailable: true, Order: 5},
		{ID: "12", Name: "Chá Gelado", Description: "Chá gelado de limão ou pêssego.", Price: 7.00, CategoryID: "4", IsAvailable: true, Order: 6},
	}

	return categories, items
}
