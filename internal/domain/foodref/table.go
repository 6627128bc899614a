package foodref

// table is the built-in refrigerated shelf-life reference, in days.
var table = []Entry{
	// Carnes
	{"Carnes frescas", 2, 2, "carnes"},
	{"Carnes cocidas", 4, 4, "carnes"},
	{"Pescado fresco", 2, 2, "carnes"},
	{"Pescado cocido", 4, 4, "carnes"},
	{"Pollo crudo", 2, 2, "carnes"},
	{"Pollo cocido", 4, 4, "carnes"},
	{"Res cruda", 2, 2, "carnes"},
	{"Res cocida", 4, 4, "carnes"},
	{"Cerdo crudo", 2, 2, "carnes"},
	{"Cerdo cocido", 4, 4, "carnes"},

	// Lácteos y huevos
	{"Huevos con cáscara", 28, 28, "lacteos"},
	{"Huevos duros", 7, 7, "lacteos"},
	{"Leche", 3, 3, "lacteos"},
	{"Yogur", 9, 9, "lacteos"},
	{"Queso fresco", 6, 6, "lacteos"},
	{"Queso curado", 23, 23, "lacteos"},
	{"Mantequilla", 18, 18, "lacteos"},
	{"Margarina", 18, 18, "lacteos"},
	{"Crema agria", 9, 9, "lacteos"},

	// Embutidos
	{"Jamón cocido", 7, 7, "embutidos"},
	{"Jamón crudo", 2, 2, "embutidos"},
	{"Salchichas cocidas", 4, 4, "embutidos"},
	{"Salchichas crudas", 2, 2, "embutidos"},
	{"Tocino cocido", 7, 7, "embutidos"},
	{"Tocino crudo", 7, 7, "embutidos"},

	// Frutas
	{"Manzanas", 25, 25, "frutas"},
	{"Peras", 6, 6, "frutas"},
	{"Plátanos", 3, 0, "frutas"},
	{"Uvas", 6, 6, "frutas"},
	{"Arándanos", 11, 11, "frutas"},
	{"Fresas", 3, 3, "frutas"},
	{"Frambuesas", 3, 3, "frutas"},
	{"Cerezas", 6, 6, "frutas"},
	{"Ciruelas", 4, 4, "frutas"},
	{"Duraznos", 4, 4, "frutas"},
	{"Mangos", 6, 6, "frutas"},
	{"Kiwis", 6, 6, "frutas"},
	{"Papaya", 3, 3, "frutas"},
	{"Piña", 4, 4, "frutas"},
	{"Sandía", 4, 4, "frutas"},
	{"Melón", 9, 9, "frutas"},
	{"Granada", 11, 11, "frutas"},
	{"Aguacate", 4, 2, "frutas"},

	// Verduras
	{"Zanahorias", 25, 25, "verduras"},
	{"Apio", 11, 11, "verduras"},
	{"Espárragos", 4, 4, "verduras"},
	{"Brócoli", 4, 4, "verduras"},
	{"Coliflor", 9, 9, "verduras"},
	{"Repollo", 25, 25, "verduras"},
	{"Lechuga", 5, 5, "verduras"},
	{"Espinacas", 4, 4, "verduras"},
	{"Perejil", 11, 11, "verduras"},
	{"Cilantro", 11, 11, "verduras"},
	{"Pimientos", 11, 11, "verduras"},
	{"Calabacín", 9, 9, "verduras"},
	{"Berenjena", 9, 9, "verduras"},
	{"Pepinos", 9, 9, "verduras"},
	{"Guisantes", 4, 4, "verduras"},
	{"Judías verdes", 4, 4, "verduras"},
	{"Nabos", 9, 9, "verduras"},
	{"Rábanos", 9, 9, "verduras"},
	{"Remolachas", 18, 18, "verduras"},
	{"Chirivías", 18, 18, "verduras"},
	{"Tomate", 7, 7, "verduras"},
	{"Cebolla", 14, 14, "verduras"},
	{"Ajo", 21, 21, "verduras"},

	// Comidas preparadas
	{"Sopas y guisos cocidos", 4, 4, "preparadas"},
	{"Comidas preparadas caseras", 4, 4, "preparadas"},
	{"Arroz cocido", 4, 4, "preparadas"},
	{"Pasta cocida", 4, 4, "preparadas"},
	{"Puré de papas cocido", 4, 4, "preparadas"},
}
