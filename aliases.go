package wikiplain

// Local aliases for the media and category namespaces, keyed by the
// wiki's language code. A wiki accepts the English base prefixes plus
// its own aliases; languages not listed here use the base prefixes
// only.
//
// Compiled from the namespace alias lists published per wiki at
// https://meta.wikimedia.org/wiki/Help:Namespace

var mediaAliases = map[string][]string{
	"ar": {"ملف", "وسائط", "صورة"},
	"bg": {"Файл", "Медия", "Картинка"},
	"ca": {"Fitxer", "Imatge", "Mèdia"},
	"cs": {"Soubor", "Média", "Obrázek"},
	"da": {"Fil", "Billede"},
	"de": {"Datei", "Bild"},
	"el": {"Αρχείο", "Εικόνα", "Μέσο"},
	"eo": {"Dosiero", "Bildo", "Aŭdvidaĵo"},
	"es": {"Archivo", "Imagen"},
	"et": {"Pilt", "Fail", "Meedia"},
	"fa": {"پرونده", "رسانه", "تصویر"},
	"fi": {"Tiedosto", "Kuva"},
	"fr": {"Fichier", "Média"},
	"he": {"קובץ", "תמונה", "מדיה"},
	"hu": {"Fájl", "Kép", "Média"},
	"id": {"Berkas", "Gambar"},
	"it": {"Immagine"},
	"ja": {"ファイル", "画像", "メディア"},
	"ko": {"파일", "그림", "미디어"},
	"nl": {"Bestand", "Afbeelding"},
	"no": {"Fil", "Bilde", "Medium"},
	"pl": {"Plik", "Grafika"},
	"pt": {"Arquivo", "Ficheiro", "Imagem", "Multimédia"},
	"ro": {"Fișier", "Imagine", "Fişier"},
	"ru": {"Файл", "Изображение"},
	"sv": {"Fil", "Bild"},
	"tr": {"Dosya", "Resim", "Ortam"},
	"uk": {"Файл", "Зображення", "Медіа"},
	"vi": {"Tập tin", "Hình", "Phương tiện"},
	"zh": {"文件", "檔案", "图像", "圖像", "档案", "媒体", "媒體"},
}

var catAliases = map[string][]string{
	"ar": {"تصنيف"},
	"bg": {"Категория"},
	"ca": {"Categoria"},
	"cs": {"Kategorie"},
	"da": {"Kategori"},
	"de": {"Kategorie"},
	"el": {"Κατηγορία"},
	"eo": {"Kategorio"},
	"es": {"Categoría"},
	"et": {"Kategooria"},
	"fa": {"رده"},
	"fi": {"Luokka"},
	"fr": {"Catégorie"},
	"he": {"קטגוריה"},
	"hu": {"Kategória"},
	"id": {"Kategori"},
	"it": {"Categoria"},
	"ja": {"カテゴリ"},
	"ko": {"분류"},
	"nl": {"Categorie"},
	"no": {"Kategori"},
	"pl": {"Kategoria"},
	"pt": {"Categoria"},
	"ro": {"Categorie"},
	"ru": {"Категория"},
	"sv": {"Kategori"},
	"tr": {"Kategori"},
	"uk": {"Категорія"},
	"vi": {"Thể loại"},
	"zh": {"分类", "分類"},
}
