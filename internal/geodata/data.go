package geodata

// districtsByCity maps city names to their districts. Sorted in init.
var districtsByCity = map[string][]string{
	"Adana":          {"Seyhan", "Çukurova", "Yüreğir", "Sarıçam", "Ceyhan", "Kozan", "İmamoğlu", "Karataş"},
	"Adıyaman":       {"Merkez", "Kahta", "Besni", "Gölbaşı", "Gerger"},
	"Afyonkarahisar": {"Merkez", "Sandıklı", "Dinar", "Bolvadin", "Emirdağ", "Çay"},
	"Ağrı":           {"Merkez", "Doğubayazıt", "Patnos", "Diyadin", "Eleşkirt"},
	"Aksaray":        {"Merkez", "Ortaköy", "Eskil", "Gülağaç"},
	"Amasya":         {"Merkez", "Merzifon", "Suluova", "Taşova", "Gümüşhacıköy"},
	"Ankara":         {"Çankaya", "Keçiören", "Yenimahalle", "Mamak", "Etimesgut", "Sincan", "Altındağ", "Pursaklar", "Gölbaşı", "Polatlı", "Çubuk", "Kahramankazan", "Beypazarı", "Elmadağ"},
	"Antalya":        {"Muratpaşa", "Kepez", "Konyaaltı", "Alanya", "Manavgat", "Serik", "Aksu", "Döşemealtı", "Kumluca", "Kaş", "Kemer", "Korkuteli"},
	"Ardahan":        {"Merkez", "Göle", "Çıldır", "Hanak", "Posof"},
	"Artvin":         {"Merkez", "Hopa", "Borçka", "Arhavi", "Yusufeli", "Şavşat"},
	"Aydın":          {"Efeler", "Nazilli", "Söke", "Kuşadası", "Didim", "İncirliova", "Çine", "Germencik"},
	"Balıkesir":      {"Altıeylül", "Karesi", "Edremit", "Bandırma", "Gönen", "Ayvalık", "Burhaniye", "Susurluk"},
	"Bartın":         {"Merkez", "Amasra", "Ulus", "Kurucaşile"},
	"Batman":         {"Merkez", "Kozluk", "Sason", "Beşiri", "Gercüş", "Hasankeyf"},
	"Bayburt":        {"Merkez", "Demirözü", "Aydıntepe"},
	"Bilecik":        {"Merkez", "Bozüyük", "Osmaneli", "Söğüt", "Gölpazarı"},
	"Bingöl":         {"Merkez", "Genç", "Solhan", "Karlıova", "Adaklı"},
	"Bitlis":         {"Merkez", "Tatvan", "Güroymak", "Ahlat", "Hizan", "Adilcevaz", "Mutki"},
	"Bolu":           {"Merkez", "Gerede", "Mudurnu", "Göynük", "Mengen"},
	"Burdur":         {"Merkez", "Bucak", "Gölhisar", "Yeşilova"},
	"Bursa":          {"Osmangazi", "Yıldırım", "Nilüfer", "İnegöl", "Gemlik", "Mudanya", "Gürsu", "Kestel", "Mustafakemalpaşa", "Karacabey", "Orhangazi", "İznik"},
	"Çanakkale":      {"Merkez", "Biga", "Çan", "Gelibolu", "Ayvacık", "Ezine", "Lapseki", "Bayramiç"},
	"Çankırı":        {"Merkez", "Çerkeş", "Ilgaz", "Orta", "Şabanözü"},
	"Çorum":          {"Merkez", "Sungurlu", "Osmancık", "İskilip", "Alaca", "Bayat"},
	"Denizli":        {"Pamukkale", "Merkezefendi", "Çivril", "Acıpayam", "Tavas", "Honaz", "Sarayköy", "Buldan"},
	"Diyarbakır":     {"Bağlar", "Kayapınar", "Yenişehir", "Sur", "Ergani", "Bismil", "Silvan", "Çınar", "Çermik"},
	"Düzce":          {"Merkez", "Akçakoca", "Kaynaşlı", "Gölyaka", "Çilimli"},
	"Edirne":         {"Merkez", "Keşan", "Uzunköprü", "İpsala", "Havsa", "Meriç", "Enez"},
	"Elazığ":         {"Merkez", "Kovancılar", "Karakoçan", "Palu", "Maden", "Baskil"},
	"Erzincan":       {"Merkez", "Tercan", "Üzümlü", "Refahiye", "Çayırlı", "Kemah", "Kemaliye"},
	"Erzurum":        {"Yakutiye", "Palandöken", "Aziziye", "Horasan", "Oltu", "Pasinler", "Karayazı", "Hınıs", "Tekman"},
	"Eskişehir":      {"Odunpazarı", "Tepebaşı", "Sivrihisar", "Çifteler", "Alpu", "Mihalıççık", "Seyitgazi"},
	"Gaziantep":      {"Şahinbey", "Şehitkamil", "Nizip", "İslahiye", "Nurdağı", "Araban", "Oğuzeli"},
	"Giresun":        {"Merkez", "Bulancak", "Espiye", "Görele", "Tirebolu", "Şebinkarahisar", "Dereli", "Keşap"},
	"Gümüşhane":      {"Merkez", "Kelkit", "Şiran", "Kürtün", "Torul", "Köse"},
	"Hakkari":        {"Merkez", "Yüksekova", "Şemdinli", "Çukurca", "Derecik"},
	"Hatay":          {"Antakya", "İskenderun", "Defne", "Dörtyol", "Samandağ", "Kırıkhan", "Reyhanlı", "Arsuz", "Altınözü", "Payas", "Erzin", "Hassa", "Belen", "Yayladağı", "Kumlu"},
	"Iğdır":          {"Merkez", "Tuzluca", "Aralık", "Karakoyunlu"},
	"Isparta":        {"Merkez", "Yalvaç", "Eğirdir", "Şarkikaraağaç", "Gelendost", "Keçiborlu", "Senirkent"},
	"İstanbul":       {"Adalar", "Arnavutköy", "Ataşehir", "Avcılar", "Bağcılar", "Bahçelievler", "Bakırköy", "Başakşehir", "Bayrampaşa", "Beşiktaş", "Beykoz", "Beylikdüzü", "Beyoğlu", "Büyükçekmece", "Çatalca", "Çekmeköy", "Esenler", "Esenyurt", "Eyüpsultan", "Fatih", "Gaziosmanpaşa", "Güngören", "Kadıköy", "Kağıthane", "Kartal", "Küçükçekmece", "Maltepe", "Pendik", "Sancaktepe", "Sarıyer", "Silivri", "Sultanbeyli", "Sultangazi", "Şile", "Şişli", "Tuzla", "Ümraniye", "Üsküdar", "Zeytinburnu"},
	"İzmir":          {"Konak", "Karşıyaka", "Bornova", "Buca", "Bayraklı", "Çiğli", "Karabağlar", "Gaziemir", "Balçova", "Narlıdere", "Güzelbahçe", "Urla", "Çeşme", "Menemen", "Aliağa", "Bergama", "Ödemiş", "Tire", "Torbalı", "Menderes", "Kemalpaşa", "Seferihisar", "Selçuk", "Dikili", "Foça"},
	"Kahramanmaraş":  {"Onikişubat", "Dulkadiroğlu", "Elbistan", "Afşin", "Türkoğlu", "Pazarcık", "Göksun", "Andırın"},
	"Karabük":        {"Merkez", "Safranbolu", "Yenice", "Eskipazar", "Eflani"},
	"Karaman":        {"Merkez", "Ermenek", "Sarıveliler", "Ayrancı"},
	"Kars":           {"Merkez", "Sarıkamış", "Kağızman", "Digor", "Selim", "Arpaçay"},
	"Kastamonu":      {"Merkez", "Tosya", "Taşköprü", "Cide", "İnebolu", "Araç", "Daday"},
	"Kayseri":        {"Melikgazi", "Kocasinan", "Talas", "Develi", "Yahyalı", "Bünyan", "İncesu", "Pınarbaşı", "Tomarza"},
	"Kırıkkale":      {"Merkez", "Keskin", "Yahşihan", "Delice", "Bahşılı"},
	"Kırklareli":     {"Merkez", "Lüleburgaz", "Babaeski", "Vize", "Pınarhisar", "Demirköy"},
	"Kırşehir":       {"Merkez", "Kaman", "Mucur", "Çiçekdağı"},
	"Kilis":          {"Merkez", "Musabeyli", "Elbeyli", "Polateli"},
	"Kocaeli":        {"İzmit", "Gebze", "Darıca", "Körfez", "Gölcük", "Derince", "Çayırova", "Kartepe", "Başiskele", "Karamürsel", "Kandıra", "Dilovası"},
	"Konya":          {"Selçuklu", "Meram", "Karatay", "Ereğli", "Akşehir", "Beyşehir", "Çumra", "Seydişehir", "Ilgın", "Cihanbeyli", "Kulu"},
	"Kütahya":        {"Merkez", "Tavşanlı", "Simav", "Gediz", "Emet", "Altıntaş"},
	"Malatya":        {"Yeşilyurt", "Battalgazi", "Doğanşehir", "Akçadağ", "Darende", "Hekimhan", "Pütürge"},
	"Manisa":         {"Yunusemre", "Şehzadeler", "Akhisar", "Turgutlu", "Salihli", "Soma", "Alaşehir", "Saruhanlı", "Kula", "Demirci", "Sarıgöl"},
	"Mardin":         {"Artuklu", "Kızıltepe", "Midyat", "Nusaybin", "Derik", "Mazıdağı", "Dargeçit", "Savur"},
	"Mersin":         {"Akdeniz", "Yenişehir", "Toroslar", "Mezitli", "Tarsus", "Erdemli", "Silifke", "Anamur", "Mut", "Gülnar"},
	"Muğla":          {"Menteşe", "Bodrum", "Fethiye", "Milas", "Marmaris", "Seydikemer", "Ortaca", "Dalaman", "Yatağan", "Köyceğiz", "Datça", "Ula", "Kavaklıdere"},
	"Muş":            {"Merkez", "Bulanık", "Malazgirt", "Varto", "Hasköy", "Korkut"},
	"Nevşehir":       {"Merkez", "Ürgüp", "Avanos", "Gülşehir", "Derinkuyu", "Kozaklı", "Hacıbektaş"},
	"Niğde":          {"Merkez", "Bor", "Çiftlik", "Ulukışla", "Altunhisar", "Çamardı"},
	"Ordu":           {"Altınordu", "Ünye", "Fatsa", "Perşembe", "Kumru", "Korgan", "Gölköy", "Akkuş"},
	"Osmaniye":       {"Merkez", "Kadirli", "Düziçi", "Bahçe", "Toprakkale", "Sumbas", "Hasanbeyli"},
	"Rize":           {"Merkez", "Çayeli", "Ardeşen", "Pazar", "Fındıklı", "Güneysu", "Kalkandere"},
	"Sakarya":        {"Adapazarı", "Serdivan", "Akyazı", "Hendek", "Karasu", "Erenler", "Geyve", "Sapanca", "Arifiye"},
	"Samsun":         {"İlkadım", "Atakum", "Canik", "Bafra", "Çarşamba", "Vezirköprü", "Terme", "Tekkeköy", "Havza"},
	"Siirt":          {"Merkez", "Kurtalan", "Pervari", "Baykan", "Şirvan", "Eruh"},
	"Sinop":          {"Merkez", "Boyabat", "Gerze", "Ayancık", "Durağan", "Türkeli"},
	"Sivas":          {"Merkez", "Şarkışla", "Yıldızeli", "Suşehri", "Zara", "Gemerek", "Divriği", "Gürün"},
	"Şanlıurfa":      {"Eyyübiye", "Haliliye", "Karaköprü", "Siverek", "Viranşehir", "Suruç", "Birecik", "Akçakale", "Ceylanpınar", "Harran", "Bozova", "Hilvan", "Halfeti"},
	"Şırnak":         {"Merkez", "Cizre", "Silopi", "İdil", "Uludere", "Beytüşşebap", "Güçlükonak"},
	"Tekirdağ":       {"Süleymanpaşa", "Çorlu", "Çerkezköy", "Kapaklı", "Malkara", "Hayrabolu", "Saray", "Muratlı", "Ergene", "Şarköy", "Marmaraereğlisi"},
	"Tokat":          {"Merkez", "Erbaa", "Turhal", "Niksar", "Zile", "Almus", "Reşadiye"},
	"Trabzon":        {"Ortahisar", "Akçaabat", "Araklı", "Of", "Yomra", "Arsin", "Vakfıkebir", "Sürmene", "Maçka", "Beşikdüzü"},
	"Tunceli":        {"Merkez", "Pertek", "Çemişgezek", "Mazgirt", "Hozat", "Ovacık", "Pülümür", "Nazımiye"},
	"Uşak":           {"Merkez", "Banaz", "Eşme", "Sivaslı", "Ulubey", "Karahallı"},
	"Van":            {"İpekyolu", "Tuşba", "Edremit", "Erciş", "Özalp", "Çaldıran", "Başkale", "Muradiye", "Gürpınar", "Gevaş"},
	"Yalova":         {"Merkez", "Çınarcık", "Çiftlikköy", "Altınova", "Armutlu", "Termal"},
	"Yozgat":         {"Merkez", "Sorgun", "Akdağmadeni", "Yerköy", "Boğazlıyan", "Sarıkaya", "Çekerek"},
	"Zonguldak":      {"Merkez", "Ereğli", "Çaycuma", "Devrek", "Alaplı", "Gökçebey", "Kilimli", "Kozlu"},
}
