package moderation

// defaultWords is the built-in forbidden vocabulary. The list is Spanish
// because the whole public surface of the marketplace is Spanish.
// Substring matching is intentional: "drogas" also catches "drogasfuertes".
var defaultWords = []string{
	"arma",
	"armas",
	"droga",
	"drogas",
	"estafa",
	"estafar",
	"fraude",
	"robo",
	"robar",
	"hackear",
	"hackeo",
	"pirata",
	"pirateria",
	"falsificacion",
	"falsificar",
	"contrabando",
	"prostitucion",
	"sexo",
	"sexual",
	"apuestas",
	"ilegal",
	"ilegales",
	"violencia",
	"matar",
	"secuestro",
	"extorsion",
	"narcotrafico",
	"trata",
	"lavado de dinero",
	"documentos falsos",
	"titulos falsos",
	"clonacion",
	"clonar tarjetas",
}
