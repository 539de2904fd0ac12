package catalog

// corine.go declares the six Corine Land Cover levels (Colombian adaptation).
// Codes of a finer level always extend the code of their coarser parent.

// CateCober is Dom_CateCober. Categoría principal de la cobertura (Nivel 1).
var CateCober = mustNumeric("Dom_CateCober",
	nm(1, "TERRITORIOS_ARTIFICIALIZADOS", "Territorios Artificializados"),
	nm(2, "TERRITORIOS_AGRICOLAS", "Territorios Agrícolas"),
	nm(3, "BOSQUES_AREAS_SEMINATURALES", "Bosques y Áreas Seminaturales"),
	nm(4, "AREAS_HUMEDAS", "Áreas Húmedas"),
	nm(5, "SUPERFICIES_DE_AGUA", "Superficies de Agua"),
)

// SubcatCober is Dom_SubcatCober. Subcategoría o segundo nivel de la cobertura.
var SubcatCober = mustNumeric("Dom_SubcatCober",
	nm(11, "ZONAS_URBANIZADAS", "Zonas urbanizadas"),
	nm(12, "ZONAS_INDUSTRIALES_COMERCIALES", "Zonas industriales o comerciales y redes de comunicación"),
	nm(13, "ZONAS_EXTRACCION_MINERA", "Zonas de extracción minera y escombreras"),
	nm(14, "ZONAS_VERDES_ARTIFICIALIZADAS", "Zonas verdes artificializadas, no agrícolas"),
	nm(21, "CULTIVOS_TRANSITORIOS", "Cultivos transitorios"),
	nm(22, "CULTIVOS_PERMANENTES", "Cultivos permanentes"),
	nm(23, "PASTOS", "Pastos"),
	nm(24, "AREAS_AGRICOLAS_HETEROGENEAS", "Áreas agrícolas heterogéneas"),
	nm(31, "BOSQUES", "Bosques"),
	nm(32, "AREAS_HERBACEA_ARBUSTIVA", "Áreas con vegetación herbácea y/o arbustiva"),
	nm(33, "AREAS_ABIERTAS_POCA_VEGETACION", "Áreas abiertas, sin o con poca vegetación"),
	nm(41, "AREAS_HUMEDAS_CONTINENTALES", "Áreas húmedas continentales"),
	nm(42, "AREAS_HUMEDAS_COSTERAS", "Áreas húmedas costeras"),
	nm(51, "AGUAS_CONTINENTALES", "Aguas continentales"),
	nm(52, "AGUAS_MARITIMAS", "Aguas marítimas"),
)

// ClasCober is Dom_Clas_Cober. Clase o tercer nivel de la cobertura (Corine Land Cover).
var ClasCober = mustNumeric("Dom_Clas_Cober",
	nm(111, "TEJIDO_URBANO_CONTINUO", "Tejido urbano continuo"),
	nm(112, "TEJIDO_URBANO_DISCONTINUO", "Tejido urbano discontinuo"),
	nm(121, "ZONAS_INDUSTRIALES_COMERCIALES", "Zonas industriales o comerciales"),
	nm(122, "RED_VIAL_FERROVIARIA", "Red vial, ferroviaria y terrenos asociados"),
	nm(123, "ZONAS_PORTUARIAS", "Zonas portuarias"),
	nm(124, "AEROPUERTOS", "Aeropuertos"),
	nm(125, "OBRAS_HIDRAULICAS", "Obras hidráulicas"),
	nm(131, "ZONAS_EXTRACCION_MINERA", "Zonas de extracción minera"),
	nm(132, "ZONAS_DISPOSICION_RESIDUOS", "Zonas de disposición de residuos"),
	nm(141, "ZONAS_VERDES_URBANAS", "Zonas verdes urbanas"),
	nm(142, "INSTALACIONES_RECREATIVAS", "Instalaciones recreativas"),
	nm(211, "OTROS_CULTIVOS_TRANSITORIOS", "Otros cultivos transitorios"),
	nm(212, "CEREALES", "Cereales"),
	nm(213, "OLEAGINOSAS_LEGUMINOSAS", "Oleaginosas y leguminosas"),
	nm(214, "HORTALIZAS", "Hortalizas"),
	nm(215, "TUBERCULOS", "Tubérculos"),
	nm(221, "CULTIVOS_PERMANENTES_HERBACEOS", "Cultivos permanentes herbáceos"),
	nm(222, "CULTIVOS_PERMANENTES_ARBUSTIVOS", "Cultivos permanentes arbustivos"),
	nm(223, "CULTIVOS_PERMANENTES_ARBOREOS", "Cultivos permanentes arbóreos"),
	nm(224, "CULTIVOS_AGROFORESTALES", "Cultivos agroforestales"),
	nm(225, "CULTIVOS_CONFINADOS", "Cultivos confinados"),
	nm(231, "PASTOS_LIMPIOS", "Pastos limpios"),
	nm(232, "PASTOS_ARBOLADOS", "Pastos arbolados"),
	nm(233, "PASTOS_ENMALEZADOS", "Pastos enmalezados"),
	nm(241, "MOSAICO_CULTIVOS", "Mosaico de cultivos"),
	nm(242, "MOSAICO_PASTOS_CULTIVOS", "Mosaico de pastos y cultivos"),
	nm(243, "MOSAICO_CULTIVOS_PASTOS_NATURALES", "Mosaico de cultivos, pastos y espacios naturales"),
	nm(244, "MOSAICO_PASTOS_NATURALES", "Mosaico de pastos con espacios naturales"),
	nm(245, "MOSAICO_CULTIVOS_NATURALES", "Mosaico de cultivos y espacios naturales"),
	nm(311, "BOSQUE_DENSO", "Bosque denso"),
	nm(312, "BOSQUE_ABIERTO", "Bosque abierto"),
	nm(313, "BOSQUE_FRAGMENTADO", "Bosque fragmentado"),
	nm(314, "BOSQUE_GALERIA_RIPARIO", "Bosque de galería y/o ripario"),
	nm(315, "PLANTACION_FORESTAL", "Plantación forestal"),
	nm(321, "HERBAZAL", "Herbazal"),
	nm(322, "ARBUSTAL", "Arbustal"),
	nm(323, "VEGETACION_SECUNDARIA_TRANSICION", "Vegetación secundaria o en transición"),
	nm(331, "ZONAS_ARENOSAS_NATURALES", "Zonas arenosas naturales"),
	nm(332, "AFLORAMIENTOS_ROCOSOS", "Afloramientos rocosos"),
	nm(333, "TIERRAS_DESNUDAS_DEGRADADAS", "Tierras desnudas y degradadas"),
	nm(334, "ZONAS_QUEMADAS", "Zonas quemadas"),
	nm(335, "ZONAS_GLACIARES_NIVALES", "Zonas glaciares y nivales"),
	nm(411, "ZONAS_PANTANOSAS", "Zonas pantanosas"),
	nm(412, "TURBERAS", "Turberas"),
	nm(413, "VEGETACION_ACUATICA_CUERPOS_AGUA", "Vegetación acuática sobre cuerpos de agua"),
	nm(421, "PANTANOS_COSTEROS", "Pantanos costeros"),
	nm(422, "SALITRAL", "Salitral"),
	nm(423, "SEDIMENTOS_EXPUESTOS_BAJAMAR", "Sedimentos expuestos en bajamar"),
	nm(511, "RIOS_50M", "Ríos (50 m)"),
	nm(512, "LAGUNAS_LAGOS_CIENAGAS_NATURALES", "Lagunas, lagos y ciénagas naturales"),
	nm(513, "CANALES", "Canales"),
	nm(514, "CUERPOS_AGUA_ARTIFICIALES", "Cuerpos de agua artificiales"),
	nm(521, "LAGUNAS_COSTERAS", "Lagunas costeras"),
	nm(522, "MARES_OCEANOS", "Mares y océanos"),
	nm(523, "ESTANQUES_ACUICULTURA_MARINA", "Estanques para acuicultura marina"),
)

// SubclasCober is Dom_Subclas_Cober. Subclase o cuarto nivel de la cobertura (Corine Land Cover).
var SubclasCober = mustNumeric("Dom_Subclas_Cober",
	nm(1211, "ZONAS_INDUSTRIALES", "Zonas industriales"),
	nm(1212, "ZONAS_COMERCIALES", "Zonas comerciales"),
	nm(1221, "RED_VIAL_TERRITORIOS_ASOCIADOS", "Red vial y territorios asociados"),
	nm(1222, "RED_FERROVIARIA_TERRENOS_ASOCIADOS", "Red ferroviaria y terrenos asociados"),
	nm(1231, "ZONAS_PORTUARIAS_FLUVIALES", "Zonas portuarias fluviales"),
	nm(1232, "ZONAS_PORTUARIAS_MARITIMAS", "Zonas portuarias marítimas"),
	nm(1241, "AEROPUERTO_INFRAESTRUCTURA_ASOCIADA", "Aeropuerto con infraestructura asociada"),
	nm(1242, "AEROPUERTO_SIN_INFRAESTRUCTURA", "Aeropuerto sin infraestructura asociada"),
	nm(1311, "OTRAS_EXPLOTACIONES_MINERAS", "Otras explotaciones mineras"),
	nm(1312, "EXPLOTACION_HIDROCARBUROS", "Explotación de hidrocarburos"),
	nm(1313, "EXPLOTACION_CARBON", "Explotación de carbón"),
	nm(1314, "EXPLOTACION_ORO", "Explotación de oro"),
	nm(1315, "EXPLOTACION_MATERIALES_CONSTRUCCION", "Explotación de materiales de construcción"),
	nm(1316, "EXPLOTACION_SAL", "Explotación de sal"),
	nm(1321, "OTROS_SITIOS_DISPOSICION_RESIDUOS", "Otros sitios de disposición de residuos a cielo abierto"),
	nm(1322, "ESCOMBRERAS", "Escombreras"),
	nm(1323, "VERTEDEROS", "Vertederos"),
	nm(1324, "RELLENO_SANITARIO", "Relleno sanitario"),
	nm(1411, "OTRAS_ZONAS_VERDES_URBANAS", "Otras zonas verdes urbanas"),
	nm(1412, "PARQUES_CEMENTERIOS", "Parques cementerios"),
	nm(1413, "JARDINES_BOTANICOS", "Jardines botánicos"),
	nm(1414, "ZOOLOGICOS", "Zoológicos"),
	nm(1415, "PARQUES_URBANOS", "Parques urbanos"),
	nm(1416, "RONDAS_CUERPOS_AGUA_URBANOS", "Rondas de cuerpos de agua de zonas urbanas"),
	nm(1421, "AREAS_CULTURALES", "Áreas culturales"),
	nm(1422, "AREAS_DEPORTIVAS", "Áreas deportivas"),
	nm(1423, "AREAS_TURISTICAS", "Áreas turísticas"),
	nm(2211, "OTROS_CULTIVOS_PERMANENTES_HERBACEOS", "Otros cultivos permanentes herbáceos"),
	nm(2212, "CANA", "Caña"),
	nm(2213, "PLATANO_Y_BANANO", "Plátano y banano"),
	nm(2214, "TABACO", "Tabaco"),
	nm(2215, "PAPAYA", "Papaya"),
	nm(2216, "AMAPOLA", "Amapola"),
	nm(2221, "OTROS_CULTIVOS_PERMANENTES_ARBUSTIVOS", "Otros cultivos permanentes arbustivos"),
	nm(2222, "CAFE", "Café"),
	nm(2223, "CACAO", "Cacao"),
	nm(2224, "VINEDOS", "Viñedos"),
	nm(2225, "COCA", "Coca"),
	nm(2231, "OTROS_CULTIVOS_PERMANENTES_ARBOREOS", "Otros cultivos permanentes arbóreos"),
	nm(2232, "PALMA_DE_ACEITE", "Palma de aceite"),
	nm(2233, "CITRICOS", "Cítricos"),
	nm(2234, "MANGO", "Mango"),
	nm(2241, "PASTOS_Y_ARBOLES_PLANTADOS", "Pastos y árboles plantados"),
	nm(2242, "CULTIVOS_Y_ARBOLES_PLANTADOS", "Cultivos y árboles plantados"),
	nm(2121, "ARROZ", "Arroz"),
	nm(2122, "MAIZ", "Maíz"),
	nm(2123, "SORGO", "Sorgo"),
	nm(2124, "CEBADA", "Cebada"),
	nm(2125, "TRIGO", "Trigo"),
	nm(2131, "ALGODON", "Algodón"),
	nm(2132, "AJONJOLI", "Ajonjolí"),
	nm(2133, "FRIJOL", "Fríjol"),
	nm(2134, "SOYA", "Soya"),
	nm(2135, "MANI", "Maní"),
	nm(2141, "CEBOLLA", "Cebolla"),
	nm(2142, "ZANAHORIA", "Zanahoria"),
	nm(2143, "REMOLACHA", "Remolacha"),
	nm(2151, "PAPA", "Papa"),
	nm(2152, "YUCA", "Yuca"),
	nm(3111, "BOSQUE_DENSO_ALTO", "Bosque denso alto"),
	nm(3112, "BOSQUE_DENSO_BAJO", "Bosque denso bajo"),
	nm(3121, "BOSQUE_ABIERTO_ALTO", "Bosque abierto alto"),
	nm(3122, "BOSQUE_ABIERTO_BAJO", "Bosque abierto bajo"),
	nm(3131, "BOSQUE_FRAGMENTADO_PASTOS_CULTIVOS", "Bosque fragmentado con pastos y cultivos"),
	nm(3132, "BOSQUE_FRAGMENTADO_VEGETACION_SECUNDARIA", "Bosque fragmentado con vegetación secundaria"),
	nm(3151, "PLANTACION_CONIFERAS", "Plantación de coníferas"),
	nm(3152, "PLANTACION_LATIFOLIADAS", "Plantación de latifoliadas"),
	nm(3211, "HERBAZAL_DENSO", "Herbazal denso"),
	nm(3212, "HERBAZAL_ABIERTO", "Herbazal abierto"),
	nm(3221, "ARBUSTAL_DENSO", "Arbustal denso"),
	nm(3222, "ARBUSTAL_ABIERTO", "Arbustal abierto"),
	nm(3231, "VEGETACION_SECUNDARIA_ALTA", "Vegetación secundaria alta"),
	nm(3232, "VEGETACION_SECUNDARIA_BAJA", "Vegetación secundaria baja"),
	nm(3311, "PLAYAS", "Playas"),
	nm(3312, "ARENALES", "Arenales"),
	nm(3313, "CAMPOS_DE_DUNAS", "Campos de dunas"),
	nm(3351, "ZONAS_GLACIARES", "Zonas glaciares"),
	nm(3352, "ZONAS_NIVALES", "Zonas nivales"),
	nm(5141, "EMBALSES", "Embalses"),
	nm(5142, "LAGUNAS_OXIDACION", "Lagunas de oxidación"),
	nm(5143, "ESTANQUES_ACUICULTURA_CONTINENTAL", "Estanques para acuicultura continental"),
	nm(5221, "OTROS_FONDOS", "Otros fondos"),
	nm(5222, "FONDOS_CORALINOS_SOMEROS", "Fondos coralinos someros"),
	nm(5223, "PRADERAS_PASTOS_MARINOS_SOMERAS", "Praderas de pastos marinos someras"),
	nm(5224, "FONDOS_SOMEROS_ARENAS_CASCAJO", "Fondos someros de arenas y cascajo"),
)

// Nivel5Cober is Dom_Nivel5_Cober. Cobertura del quinto nivel (Corine Land Cover).
var Nivel5Cober = mustNumeric("Dom_Nivel5_Cober",
	nm(31111, "BOSQUE_DENSO_ALTO_TIERRA_FIRME", "Bosque denso alto de tierra firme"),
	nm(31112, "BOSQUE_DENSO_ALTO_INUNDABLE", "Bosque denso alto inundable"),
	nm(31121, "BOSQUE_DENSO_BAJO_TIERRA_FIRME", "Bosque denso bajo de tierra firme"),
	nm(31122, "BOSQUE_DENSO_BAJO_INUNDABLE", "Bosque denso bajo inundable"),
	nm(31211, "BOSQUE_ABIERTO_ALTO_TIERRA_FIRME", "Bosque abierto alto de tierra firme"),
	nm(31212, "BOSQUE_ABIERTO_ALTO_INUNDABLE", "Bosque abierto alto inundable"),
	nm(31221, "BOSQUE_ABIERTO_BAJO_TIERRA_FIRME", "Bosque abierto bajo de tierra firme"),
	nm(31222, "BOSQUE_ABIERTO_BAJO_INUNDABLE", "Bosque abierto bajo inundable"),
	nm(32111, "HERBAZAL_DENSO_TIERRA_FIRME", "Herbazal denso de tierra firme"),
	nm(32112, "HERBAZAL_DENSO_INUNDABLE", "Herbazal denso inundable"),
	nm(32121, "HERBAZAL_ABIERTO_ARENOSO", "Herbazal abierto arenoso"),
	nm(32122, "HERBAZAL_ABIERTO_ROCOSO", "Herbazal abierto rocoso"),
	nm(32221, "ARBUSTAL_ABIERTO_ESCLEROFILO", "Arbustal abierto esclerófilo"),
	nm(32222, "ARBUSTAL_ABIERTO_MESOFILO", "Arbustal abierto mesófilo"),
)

// Nivel6Cober is Dom_Nivel6_Cober. Cobertura del sexto nivel (Detalle fisonómico y botánico).
var Nivel6Cober = mustNumeric("Dom_Nivel6_Cober",
	nm(311121, "BOSQUE_DENSO_ALTO_INUNDABLE_HETEROGENEO", "Bosque denso alto inundable heterogéneo"),
	nm(311122, "MANGLAR_DENSO_ALTO", "Manglar denso alto"),
	nm(311123, "PALMARES", "Palmares"),
	nm(321111, "HERBAZAL_DENSO_TIERRA_FIRME_NO_ARBOLADO", "Herbazal denso de tierra firme no arbolado"),
	nm(321112, "HERBAZAL_DENSO_TIERRA_FIRME_ARBOLADO", "Herbazal denso de tierra firme arbolado"),
	nm(321113, "HERBAZAL_DENSO_TIERRA_FIRME_CON_ARBUSTOS", "Herbazal denso de tierra firme con arbustos"),
	nm(321121, "HERBAZAL_DENSO_INUNDABLE_NO_ARBOLADO", "Herbazal denso inundable no arbolado"),
	nm(321122, "HERBAZAL_DENSO_INUNDABLE_ARBOLADO", "Herbazal denso inundable arbolado"),
	nm(321123, "ARRACACHAL", "Arracachal"),
	nm(321124, "HELECHAL", "Helechal"),
)
